package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/astro-atlas/pkg/adapters"
	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/de-tools/astro-atlas/pkg/models/store"
	"github.com/de-tools/astro-atlas/pkg/store/duckdb/reports"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) SaveChart(ctx context.Context, chart *store.Chart) error {
	return m.Called(ctx, chart).Error(0)
}

func (m *mockStore) GetChart(ctx context.Context, id string) (*store.Chart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Chart), args.Error(1)
}

func (m *mockStore) SaveReport(ctx context.Context, report *store.Report) error {
	return m.Called(ctx, report).Error(0)
}

func (m *mockStore) SaveChartReport(ctx context.Context, chart *store.Chart, report *store.Report) error {
	return m.Called(ctx, chart, report).Error(0)
}

func (m *mockStore) GetReport(ctx context.Context, id string) (*store.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Report), args.Error(1)
}

func (m *mockStore) ListReports(ctx context.Context, chartID string) ([]*store.Report, error) {
	args := m.Called(ctx, chartID)
	return args.Get(0).([]*store.Report), args.Error(1)
}

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Archive(ctx context.Context, report domain.Report) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}

type mockProfiles struct {
	mock.Mock
}

func (m *mockProfiles) GetProfiles(ctx context.Context) ([]domain.BirthProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BirthProfile), args.Error(1)
}

func (m *mockProfiles) GetProfile(ctx context.Context, name string) (domain.BirthProfile, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.BirthProfile), args.Error(1)
}

func (m *mockProfiles) GetChart(ctx context.Context, name string) (domain.BirthChart, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.BirthChart), args.Error(1)
}

type fixture struct {
	store    *mockStore
	archiver *mockArchiver
	profiles *mockProfiles
	server   *httptest.Server
}

func setupFixture(t *testing.T) *fixture {
	f := &fixture{
		store:    new(mockStore),
		archiver: new(mockArchiver),
		profiles: new(mockProfiles),
	}

	logger := zerolog.New(zerolog.NewTestWriter(t))
	webAPI := NewWebAPI(logger, Config{
		Addr: ":8080",
		Dependencies: Dependencies{
			Store:    f.store,
			Archiver: f.archiver,
			Profiles: f.profiles,
			Now:      func() time.Time { return fixedNow },
		},
	})
	f.server = httptest.NewServer(webAPI.router)
	t.Cleanup(f.server.Close)
	return f
}

func sampleChart() api.BirthChart {
	birthTime := "14:30"
	return api.BirthChart{
		Name:      "Jane",
		BirthDate: "1990-07-15",
		BirthTime: &birthTime,
		ChartData: api.ChartData{
			Planets: []api.Planet{
				{Name: "Sun", Sign: "Cancer", Degree: 22, House: 9},
				{Name: "Moon", Sign: "Aries", Degree: 3, House: 6},
			},
			Houses: []api.House{{Number: 1, Sign: "Scorpio"}},
		},
	}
}

func TestWebAPI_Calculators(t *testing.T) {
	f := setupFixture(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "GetSign",
			method:         http.MethodGet,
			path:           "/api/v1/signs/scorpio",
			expectedStatus: http.StatusOK,
			expected:       api.Sign{Sign: "Scorpio", Element: "Water", Modality: "Fixed", Ruler: "Mars"},
			parseResponse:  unmarshalResponse[api.Sign](),
		},
		{
			name:           "GetSign_Unknown",
			method:         http.MethodGet,
			path:           "/api/v1/signs/Ophiuchus",
			expectedStatus: http.StatusOK,
			expected:       api.Sign{Sign: "Ophiuchus", Element: "Unknown", Modality: "Unknown", Ruler: "Unknown"},
			parseResponse:  unmarshalResponse[api.Sign](),
		},
		{
			name:           "GetPillars_InvalidDate",
			method:         http.MethodPost,
			path:           "/api/v1/pillars",
			body:           api.BirthMoment{BirthDate: "15-07-1990"},
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid 'birth_date' format. Expected format: YYYY-MM-DD\n",
			parseResponse:  plainText,
		},
		{
			name:           "GetKua",
			method:         http.MethodGet,
			path:           "/api/v1/kua?year=1990&gender=female",
			expectedStatus: http.StatusOK,
			expected: api.Kua{
				Year: 1990, Gender: "female", Kua: 4, Element: "Wood", Group: "East",
				Favorable:   []string{"North", "South", "East", "Southeast"},
				Unfavorable: []string{"Northwest", "Southwest", "West", "Northeast"},
				Colors:      []string{"Green", "Teal", "Blue"},
				Personality: "Gentle and persuasive, growing through patience.",
			},
			parseResponse: unmarshalResponse[api.Kua](),
		},
		{
			name:           "GetKua_InvalidGender",
			method:         http.MethodGet,
			path:           "/api/v1/kua?year=1990&gender=x",
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid 'gender'. Expected 'male' or 'female'\n",
			parseResponse:  plainText,
		},
		{
			name:           "GetKua_MissingYear",
			method:         http.MethodGet,
			path:           "/api/v1/kua",
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid 'year'. Expected a four digit year\n",
			parseResponse:  plainText,
		},
		{
			name:           "GetDignity",
			method:         http.MethodGet,
			path:           "/api/v1/dignity?planet=Mars&sign=capricorn",
			expectedStatus: http.StatusOK,
			expected:       api.Dignity{Planet: "Mars", Sign: "Capricorn", Dignity: "Exaltation"},
			parseResponse:  unmarshalResponse[api.Dignity](),
		},
		{
			name:           "GetDignity_MissingSign",
			method:         http.MethodGet,
			path:           "/api/v1/dignity?planet=Mars",
			expectedStatus: http.StatusBadRequest,
			expected:       "'planet' and 'sign' are required\n",
			parseResponse:  plainText,
		},
		{
			name:           "GetLots_InvalidBody",
			method:         http.MethodPost,
			path:           "/api/v1/lots",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid request body\n",
			parseResponse:  plainText,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := f.do(t, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.expectedStatus, status, "Status code mismatch")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_Pillars(t *testing.T) {
	f := setupFixture(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/pillars", api.BirthMoment{BirthDate: "1990-07-15"})
	require.Equal(t, http.StatusOK, status)

	var fp api.FourPillars
	require.NoError(t, json.Unmarshal(body, &fp))
	assert.Equal(t, "Horse", fp.Year.Animal)
	assert.Equal(t, "Geng", fp.Year.StemRomanized)
	assert.Equal(t, "Metal", fp.YearElement)
	assert.Equal(t, "Xin", fp.Day.StemRomanized)
	assert.Equal(t, "Goat", fp.Day.Animal)
	assert.False(t, fp.HourKnown)
}

func TestWebAPI_TimeLords(t *testing.T) {
	f := setupFixture(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/timelords", api.TimeLordsRequest{
		BirthDate:   "1990-07-15",
		Ascendant:   "Scorpio",
		FortuneSign: "Leo",
	})
	require.Equal(t, http.StatusOK, status)

	var tl api.TimeLords
	require.NoError(t, json.Unmarshal(body, &tl))
	assert.Equal(t, 36, tl.Age)
	assert.Equal(t, "Venus", tl.Decennial.Planet)
	assert.Equal(t, 1, tl.Profection.House)
	assert.Equal(t, "Mars", tl.Profection.SignRuler)
	assert.Equal(t, "Virgo", tl.Releasing.Sign)
	assert.Equal(t, "Mercury", tl.Releasing.Planet)
	assert.Equal(t, 3, tl.Releasing.Remaining)
	assert.True(t, tl.Releasing.InRange)
}

func TestWebAPI_Lots(t *testing.T) {
	f := setupFixture(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/lots", api.LotsRequest{Chart: sampleChart()})
	require.Equal(t, http.StatusOK, status)

	var out api.Lots
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.DayChart)
	require.Len(t, out.Lots, 5)

	fortune := out.Lots[0]
	assert.Equal(t, "Fortune", fortune.Name)
	assert.Equal(t, "Sagittarius", fortune.Sign)
	assert.InDelta(t, 251.0, fortune.Degree, 1e-9)
	assert.Equal(t, 9, fortune.House)
	assert.Empty(t, fortune.Unresolved)

	assert.Equal(t, []string{"Venus"}, out.Lots[2].Unresolved)
}

func TestWebAPI_Nakshatras(t *testing.T) {
	f := setupFixture(t)

	status, body := f.do(t, http.MethodPost, "/api/v1/nakshatras", sampleChart())
	require.Equal(t, http.StatusOK, status)

	var out api.Nakshatras
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Placements, 2)
	assert.Equal(t, "Ashwini", out.Placements[1].Nakshatra)
	require.NotNil(t, out.Dasha)
	assert.Equal(t, "Ketu", out.Dasha.Sequence[0].Lord)
	assert.NotEmpty(t, out.Ascendant.Nakshatra)
}

func TestWebAPI_Reports(t *testing.T) {
	f := setupFixture(t)

	chart, err := adapters.MapChartApiToDomain(sampleChart())
	require.NoError(t, err)
	chartRow, err := adapters.MapChartDomainToStore(chart)
	require.NoError(t, err)
	chartRow.ID = "chart-1"

	reportRow := &store.Report{
		ID:         "report-1",
		ChartID:    "chart-1",
		ReportType: "chinese",
		Content:    "**Career**\nSteady.",
		CreatedAt:  fixedNow,
	}

	t.Run("CreateReport", func(t *testing.T) {
		f.store.On("SaveChartReport", mock.Anything, mock.AnythingOfType("*store.Chart"),
			mock.MatchedBy(func(r *store.Report) bool { return r.ReportType == "Chinese natal" })).
			Run(func(args mock.Arguments) {
				args.Get(1).(*store.Chart).ID = "chart-1"
				args.Get(2).(*store.Report).ID = "report-1"
				args.Get(2).(*store.Report).ChartID = "chart-1"
			}).
			Return(nil).Once()

		status, body := f.do(t, http.MethodPost, "/api/v1/reports", api.ReportRequest{
			Chart:      sampleChart(),
			ReportType: "Chinese natal",
			Content:    "**Career**\nSteady.",
		})
		require.Equal(t, http.StatusCreated, status, string(body))

		var out api.Report
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "report-1", out.ID)
		assert.Equal(t, "chinese", out.Tradition)
		assert.Equal(t, "Chinese Birth Chart", out.Title)
		require.Len(t, out.Sections, 3)
		assert.Equal(t, "Four Pillars", out.Sections[0].Title)
		assert.True(t, out.Sections[1].Locked)
		assert.Equal(t, "Career", out.Sections[2].Title)
	})

	t.Run("CreateReport_InvalidChart", func(t *testing.T) {
		bad := sampleChart()
		bad.BirthDate = "yesterday"
		status, body := f.do(t, http.MethodPost, "/api/v1/reports", api.ReportRequest{Chart: bad})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid 'birth_date' format. Expected format: YYYY-MM-DD\n", string(body))
	})

	t.Run("CreateReport_StoreFailure", func(t *testing.T) {
		f.store.On("SaveChartReport", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("disk full")).Once()
		status, _ := f.do(t, http.MethodPost, "/api/v1/reports", api.ReportRequest{Chart: sampleChart()})
		assert.Equal(t, http.StatusInternalServerError, status)
	})

	t.Run("GetReport", func(t *testing.T) {
		f.store.On("GetReport", mock.Anything, "report-1").Return(reportRow, nil).Once()
		f.store.On("GetChart", mock.Anything, "chart-1").Return(&chartRow, nil).Once()

		status, body := f.do(t, http.MethodGet, "/api/v1/reports/report-1", nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var out api.Report
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "report-1", out.ID)
		assert.Equal(t, "Jane, born 1990-07-15 14:30", out.Subject)
	})

	t.Run("GetReport_NotFound", func(t *testing.T) {
		f.store.On("GetReport", mock.Anything, "missing").
			Return(nil, fmt.Errorf("report missing: %w", reports.ErrNotFound)).Once()

		status, _ := f.do(t, http.MethodGet, "/api/v1/reports/missing", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("ArchiveReport", func(t *testing.T) {
		f.store.On("GetReport", mock.Anything, "report-1").Return(reportRow, nil).Once()
		f.store.On("GetChart", mock.Anything, "chart-1").Return(&chartRow, nil).Once()
		f.archiver.On("Archive", mock.Anything, mock.MatchedBy(func(r domain.Report) bool {
			return r.ID == "report-1" && r.Tradition == domain.TraditionChinese
		})).Return("s3://bucket/reports/chinese/report-1.json", nil).Once()

		status, body := f.do(t, http.MethodPost, "/api/v1/reports/report-1/archive", nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var out api.Archive
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, api.Archive{ReportID: "report-1", URI: "s3://bucket/reports/chinese/report-1.json"}, out)
	})

	t.Run("ListChartReports", func(t *testing.T) {
		f.store.On("ListReports", mock.Anything, "chart-1").Return([]*store.Report{reportRow}, nil).Once()

		status, body := f.do(t, http.MethodGet, "/api/v1/charts/chart-1/reports", nil)
		require.Equal(t, http.StatusOK, status)

		var out []api.ReportSummary
		require.NoError(t, json.Unmarshal(body, &out))
		require.Len(t, out, 1)
		assert.Equal(t, "chinese", out[0].ReportType)
	})

	f.store.AssertExpectations(t)
	f.archiver.AssertExpectations(t)
}

func TestWebAPI_WithoutStore(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	webAPI := NewWebAPI(logger, Config{Dependencies: Dependencies{Now: func() time.Time { return fixedNow }}})
	srv := httptest.NewServer(webAPI.router)
	defer srv.Close()
	f := &fixture{server: srv}

	status, body := f.do(t, http.MethodPost, "/api/v1/reports", api.ReportRequest{Chart: sampleChart(), IsPremium: true})
	require.Equal(t, http.StatusCreated, status)

	var out api.Report
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "western", out.Tradition)
	for _, s := range out.Sections {
		assert.False(t, s.Locked, s.Title)
	}

	status, _ = f.do(t, http.MethodGet, "/api/v1/reports/"+out.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = f.do(t, http.MethodPost, "/api/v1/reports/"+out.ID+"/archive", nil)
	assert.Equal(t, http.StatusNotImplemented, status)

	status, body = f.do(t, http.MethodGet, "/api/v1/profiles", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(body))
}

func TestWebAPI_Profiles(t *testing.T) {
	f := setupFixture(t)

	jane := domain.BirthProfile{Name: "jane", BirthDate: "1990-07-15", City: "London"}
	f.profiles.On("GetProfiles", mock.Anything).Return([]domain.BirthProfile{jane}, nil)
	f.profiles.On("GetProfile", mock.Anything, "jane").Return(jane, nil)
	f.profiles.On("GetProfile", mock.Anything, "bob").
		Return(domain.BirthProfile{}, errors.New("profile bob not found"))

	status, body := f.do(t, http.MethodGet, "/api/v1/profiles", nil)
	require.Equal(t, http.StatusOK, status)
	list, err := unmarshalResponse[[]api.Profile]()(body)
	require.NoError(t, err)
	assert.Equal(t, []api.Profile{{Name: "jane", BirthDate: "1990-07-15", City: "London"}}, list)

	status, _ = f.do(t, http.MethodGet, "/api/v1/profiles/jane", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = f.do(t, http.MethodGet, "/api/v1/profiles/bob", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "profile bob not found\n", string(body))
}

func (f *fixture) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "Failed to send request")
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return resp.StatusCode, data
}

func plainText(data []byte) (interface{}, error) {
	return string(data), nil
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
