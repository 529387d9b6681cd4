package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/ecodent-simulator/pkg/display"
	"github.com/de-tools/ecodent-simulator/pkg/models/api"
	"github.com/de-tools/ecodent-simulator/pkg/services/config"
	"github.com/de-tools/ecodent-simulator/pkg/services/preset"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
	"github.com/de-tools/ecodent-simulator/pkg/services/workflow"
	"github.com/de-tools/ecodent-simulator/pkg/store/pricing"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfiles = `
[clinic-paris]
role = dentist
region = paris
cases_per_month = 15
patient_fee = 2400
ecodent_cost = 800
`

func newTestConfig(t *testing.T) Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".ecodentcfg")
	require.NoError(t, os.WriteFile(path, []byte(testProfiles), 0o600))
	profiles, err := config.NewRegistry(path)
	require.NoError(t, err)

	formatter, err := display.NewFormatter("en-US", "€")
	require.NoError(t, err)

	store := pricing.NewDefaultStore()
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Calculator: scenario.NewCalculator(store),
			Presets:    preset.NewService(store),
			Catalog:    workflow.NewCatalog(),
			Profiles:   profiles,
			Formatter:  formatter,
			Logger:     zerolog.New(zerolog.NewTestWriter(t)),
		},
	}
}

// summary strips the per-request id and timestamp from a calculation.
type summary struct {
	Input   api.ScenarioInput
	Monthly float64
	Display api.ScenarioDisplay
}

func unmarshalCalculation() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var calc api.Calculation
		if err := json.Unmarshal(data, &calc); err != nil {
			return nil, err
		}
		return summary{Input: calc.Input, Monthly: calc.Result.MonthlyIncome, Display: calc.Display}, nil
	}
}

func TestWebAPI_Endpoints(t *testing.T) {
	router := ConfigureRouter(newTestConfig(t))
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "GetPreset",
			method:         http.MethodGet,
			path:           "/api/v1/presets/dubai/conservative",
			expectedStatus: http.StatusOK,
			expected:       api.Preset{Tier: "conservative", CasesPerMonth: 10, PatientFee: 2600},
			parseResponse:  unmarshalResponse[api.Preset](),
		},
		{
			name:           "GetPreset_UnknownTier",
			method:         http.MethodGet,
			path:           "/api/v1/presets/dubai/extreme",
			expectedStatus: http.StatusNotFound,
			expected: api.ErrorResponse{
				Status:  http.StatusNotFound,
				Code:    api.CodeUnknownTier,
				Message: `unknown tier: "extreme"`,
			},
			parseResponse: unmarshalResponse[api.ErrorResponse](),
		},
		{
			name:           "GetEconomics",
			method:         http.MethodGet,
			path:           "/api/v1/economics",
			expectedStatus: http.StatusOK,
			expected: api.Economics{
				Investor: []api.RegionEconomics{
					{Region: "dubai", SharePct: 0.5, CostPerCase: 525},
					{Region: "paris", RevenuePerCase: 1370, CostPerCase: 480},
				},
				Dentist: api.DentistAssumptions{
					SharePct:              0.5,
					TimeSavedPerCaseHours: 0.5,
					AvoidedInvestmentMin:  80000,
					AvoidedInvestmentMax:  100000,
				},
			},
			parseResponse: unmarshalResponse[api.Economics](),
		},
		{
			name:           "ComputeQuery",
			method:         http.MethodGet,
			path:           "/api/v1/scenario?role=investor&region=dubai&cases_per_month=20&patient_fee=2800&ecodent_cost=800&initial_investment=150000",
			expectedStatus: http.StatusOK,
			expected: summary{
				Input: api.ScenarioInput{
					Role:              "investor",
					Region:            "dubai",
					CasesPerMonth:     20,
					PatientFee:        2800,
					EcodentCost:       800,
					InitialInvestment: 150000,
				},
				Monthly: 17500,
				Display: api.ScenarioDisplay{
					IncomePerCase: "875 €",
					MonthlyIncome: "17,500 €",
					YearlyIncome:  "210,000 €",
					PaybackMonths: "8.6 months",
				},
			},
			parseResponse: unmarshalCalculation(),
		},
		{
			name:           "ComputeBody",
			method:         http.MethodPost,
			path:           "/api/v1/scenario",
			body:           `{"role":"dentist","region":"paris","cases_per_month":-4,"patient_fee":2200,"ecodent_cost":800}`,
			expectedStatus: http.StatusOK,
			expected: summary{
				Input: api.ScenarioInput{
					Role:        "dentist",
					Region:      "paris",
					PatientFee:  2200,
					EcodentCost: 800,
				},
				Display: api.ScenarioDisplay{
					IncomePerCase:      "1,400 €",
					MonthlyIncome:      "0 €",
					YearlyIncome:       "0 €",
					HoursSavedPerMonth: "0.0 h",
				},
			},
			parseResponse: unmarshalCalculation(),
		},
		{
			name:           "ListProfiles",
			method:         http.MethodGet,
			path:           "/api/v1/profiles",
			expectedStatus: http.StatusOK,
			expected:       []api.Profile{{Name: "clinic-paris"}},
			parseResponse:  unmarshalResponse[[]api.Profile](),
		},
		{
			name:           "ComputeProfile",
			method:         http.MethodGet,
			path:           "/api/v1/profiles/clinic-paris/scenario",
			expectedStatus: http.StatusOK,
			expected: summary{
				Input: api.ScenarioInput{
					Role:          "dentist",
					Region:        "paris",
					CasesPerMonth: 15,
					PatientFee:    2400,
					EcodentCost:   800,
				},
				Monthly: 24000,
				Display: api.ScenarioDisplay{
					IncomePerCase:      "1,600 €",
					MonthlyIncome:      "24,000 €",
					YearlyIncome:       "288,000 €",
					HoursSavedPerMonth: "7.5 h",
				},
			},
			parseResponse: unmarshalCalculation(),
		},
		{
			name:           "ComputeProfile_Unknown",
			method:         http.MethodGet,
			path:           "/api/v1/profiles/nope/scenario",
			expectedStatus: http.StatusNotFound,
			expected: api.ErrorResponse{
				Status:  http.StatusNotFound,
				Code:    api.CodeUnknownProfile,
				Message: "profile not found: nope",
			},
			parseResponse: unmarshalResponse[api.ErrorResponse](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_Workflow(t *testing.T) {
	testServer := httptest.NewServer(ConfigureRouter(newTestConfig(t)))
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/api/v1/workflow")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var wf api.Workflow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&wf))
	assert.Len(t, wf.Steps, 6)
	assert.Len(t, wf.Included, 8)
	assert.Len(t, wf.AvoidedCosts, 6)
}

func TestWebAPI_UnknownRoute(t *testing.T) {
	testServer := httptest.NewServer(ConfigureRouter(newTestConfig(t)))
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/api/v1/workspaces")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var result T
		err := json.Unmarshal(data, &result)
		return result, err
	}
}
