package gsc

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/gscclient/mocks"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		GSC: config.GSC{
			PageSize:         3,
			MaxRetryAttempts: 3,
			RetryBaseDelay:   2 * time.Second,
			MaxPages:         10,
		},
	}
}

// makeAPIRows gera n linhas da API com chaves determinísticas a partir do
// offset informado
func makeAPIRows(offset, n int) []gscdomain.SearchAnalyticsRow {
	rows := make([]gscdomain.SearchAnalyticsRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, gscdomain.SearchAnalyticsRow{
			Keys:        []string{fmt.Sprintf("2024-03-%02d", (offset+i)%28+1), fmt.Sprintf("/page-%d", offset+i)},
			Clicks:      float64(offset + i),
			Impressions: float64((offset + i) * 10),
			CTR:         0.1,
			Position:    5.0,
		})
	}
	return rows
}

func TestFetchSearchAnalytics_Paginacao(t *testing.T) {
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	dimensions := []string{domain.DimensionDate, domain.DimensionPage}

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient, startRows *[]int)
		validate func(t *testing.T, data *domain.SearchData, err error, startRows []int)
	}{
		{
			name: "Resultado vazio na primeira página - drenagem completa sem linhas",
			setup: func(client *mocks.MockClient, startRows *[]int) {
				client.EXPECT().
					QuerySearchAnalytics("https://example.com/", gomock.Any()).
					DoAndReturn(func(_ string, q *gscdomain.SearchAnalyticsQuery) ([]gscdomain.SearchAnalyticsRow, error) {
						*startRows = append(*startRows, q.StartRow)
						return nil, nil
					})
			},
			validate: func(t *testing.T, data *domain.SearchData, err error, startRows []int) {
				assert.NoError(t, err)
				assert.True(t, data.Complete)
				assert.Empty(t, data.Rows)
				assert.Equal(t, []int{0}, startRows)
			},
		},
		{
			name: "Página única aquém do limite - termina sem segunda chamada",
			setup: func(client *mocks.MockClient, startRows *[]int) {
				client.EXPECT().
					QuerySearchAnalytics("https://example.com/", gomock.Any()).
					DoAndReturn(func(_ string, q *gscdomain.SearchAnalyticsQuery) ([]gscdomain.SearchAnalyticsRow, error) {
						*startRows = append(*startRows, q.StartRow)
						return makeAPIRows(0, 2), nil
					})
			},
			validate: func(t *testing.T, data *domain.SearchData, err error, startRows []int) {
				assert.NoError(t, err)
				assert.True(t, data.Complete)
				assert.Len(t, data.Rows, 2)
				assert.Equal(t, []int{0}, startRows)
			},
		},
		{
			name: "Total múltiplo exato do tamanho da página - página vazia encerra",
			setup: func(client *mocks.MockClient, startRows *[]int) {
				pages := [][]gscdomain.SearchAnalyticsRow{
					makeAPIRows(0, 3),
					nil,
				}
				call := 0
				client.EXPECT().
					QuerySearchAnalytics("https://example.com/", gomock.Any()).
					DoAndReturn(func(_ string, q *gscdomain.SearchAnalyticsQuery) ([]gscdomain.SearchAnalyticsRow, error) {
						*startRows = append(*startRows, q.StartRow)
						page := pages[call]
						call++
						return page, nil
					}).Times(2)
			},
			validate: func(t *testing.T, data *domain.SearchData, err error, startRows []int) {
				assert.NoError(t, err)
				assert.True(t, data.Complete)
				assert.Len(t, data.Rows, 3)
				assert.Equal(t, []int{0, 3}, startRows)
			},
		},
		{
			name: "Três páginas com última curta - ordem de chegada preservada",
			setup: func(client *mocks.MockClient, startRows *[]int) {
				pages := [][]gscdomain.SearchAnalyticsRow{
					makeAPIRows(0, 3),
					makeAPIRows(3, 3),
					makeAPIRows(6, 2),
				}
				call := 0
				client.EXPECT().
					QuerySearchAnalytics("https://example.com/", gomock.Any()).
					DoAndReturn(func(_ string, q *gscdomain.SearchAnalyticsQuery) ([]gscdomain.SearchAnalyticsRow, error) {
						*startRows = append(*startRows, q.StartRow)
						page := pages[call]
						call++
						return page, nil
					}).Times(3)
			},
			validate: func(t *testing.T, data *domain.SearchData, err error, startRows []int) {
				assert.NoError(t, err)
				assert.True(t, data.Complete)
				assert.Len(t, data.Rows, 8)
				assert.Equal(t, []int{0, 3, 6}, startRows)

				// A ordem global é a ordem de chegada das páginas
				for i, row := range data.Rows {
					assert.Equal(t, float64(i), row.Clicks)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			startRows := make([]int, 0)
			tt.setup(mockClient, &startRows)

			service := &GSCIntegrator{
				cfg:    testConfig(),
				Client: mockClient,
				sleep:  func(time.Duration) {},
			}

			data, err := service.FetchSearchAnalytics("https://example.com/", startDate, endDate, dimensions, nil)
			tt.validate(t, data, err, startRows)
		})
	}
}

func TestFetchSearchAnalytics_RateLimit(t *testing.T) {
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Rate limit recuperado antes do limite de tentativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)

		gomock.InOrder(
			mockClient.EXPECT().
				QuerySearchAnalytics(gomock.Any(), gomock.Any()).
				Return(nil, &gscdomain.RateLimitError{Message: "rateLimitExceeded"}),
			mockClient.EXPECT().
				QuerySearchAnalytics(gomock.Any(), gomock.Any()).
				Return(makeAPIRows(0, 2), nil),
		)

		sleeps := make([]time.Duration, 0)
		service := &GSCIntegrator{
			cfg:    testConfig(),
			Client: mockClient,
			sleep:  func(d time.Duration) { sleeps = append(sleeps, d) },
		}

		data, err := service.FetchSearchAnalytics("https://example.com/", startDate, endDate, []string{domain.DimensionDate}, nil)

		assert.NoError(t, err)
		assert.True(t, data.Complete)
		assert.Len(t, data.Rows, 2)

		// Backoff linear: primeira repetição espera 1 x delay base
		assert.Equal(t, []time.Duration{2 * time.Second}, sleeps)
	})

	t.Run("Retry-After maior que o backoff prevalece", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)

		gomock.InOrder(
			mockClient.EXPECT().
				QuerySearchAnalytics(gomock.Any(), gomock.Any()).
				Return(nil, &gscdomain.RateLimitError{RetryAfter: 10 * time.Second, Message: "quotaExceeded"}),
			mockClient.EXPECT().
				QuerySearchAnalytics(gomock.Any(), gomock.Any()).
				Return(nil, nil),
		)

		sleeps := make([]time.Duration, 0)
		service := &GSCIntegrator{
			cfg:    testConfig(),
			Client: mockClient,
			sleep:  func(d time.Duration) { sleeps = append(sleeps, d) },
		}

		_, err := service.FetchSearchAnalytics("https://example.com/", startDate, endDate, []string{domain.DimensionDate}, nil)

		assert.NoError(t, err)
		assert.Equal(t, []time.Duration{10 * time.Second}, sleeps)
	})

	t.Run("Rate limit esgotado devolve resultado parcial sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)

		// Primeira página completa, segunda página sempre rejeitada
		gomock.InOrder(
			mockClient.EXPECT().
				QuerySearchAnalytics(gomock.Any(), gomock.Any()).
				Return(makeAPIRows(0, 3), nil),
			mockClient.EXPECT().
				QuerySearchAnalytics(gomock.Any(), gomock.Any()).
				Return(nil, &gscdomain.RateLimitError{Message: "rateLimitExceeded"}).
				Times(3),
		)

		sleeps := make([]time.Duration, 0)
		service := &GSCIntegrator{
			cfg:    testConfig(),
			Client: mockClient,
			sleep:  func(d time.Duration) { sleeps = append(sleeps, d) },
		}

		data, err := service.FetchSearchAnalytics("https://example.com/", startDate, endDate, []string{domain.DimensionDate}, nil)

		// Esgotar as tentativas não é erro: o acumulado volta como parcial
		assert.NoError(t, err)
		assert.False(t, data.Complete)
		assert.Len(t, data.Rows, 3)

		// Duas esperas (não há espera após a última tentativa), crescimento linear
		assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeps)
	})
}

func TestFetchSearchAnalytics_Falhas(t *testing.T) {
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Falha de transporte não é repetida e devolve parcial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)

		gomock.InOrder(
			mockClient.EXPECT().
				QuerySearchAnalytics(gomock.Any(), gomock.Any()).
				Return(makeAPIRows(0, 3), nil),
			mockClient.EXPECT().
				QuerySearchAnalytics(gomock.Any(), gomock.Any()).
				Return(nil, &gscdomain.TransportError{StatusCode: 503, Message: "backendError"}),
		)

		service := &GSCIntegrator{
			cfg:    testConfig(),
			Client: mockClient,
			sleep:  func(time.Duration) { t.Fatal("não deveria aguardar para falha de transporte") },
		}

		data, err := service.FetchSearchAnalytics("https://example.com/", startDate, endDate, []string{domain.DimensionDate}, nil)

		assert.NoError(t, err)
		assert.False(t, data.Complete)
		assert.Len(t, data.Rows, 3)
	})

	t.Run("Falha de credencial sobe como erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)

		mockClient.EXPECT().
			QuerySearchAnalytics(gomock.Any(), gomock.Any()).
			Return(nil, &gscdomain.AuthError{Reason: "authError", Message: "Invalid Credentials"})

		service := &GSCIntegrator{
			cfg:    testConfig(),
			Client: mockClient,
			sleep:  func(time.Duration) {},
		}

		data, err := service.FetchSearchAnalytics("https://example.com/", startDate, endDate, []string{domain.DimensionDate}, nil)

		assert.Error(t, err)
		assert.False(t, data.Complete)
		assert.Empty(t, data.Rows)
	})

	t.Run("Limite defensivo de páginas encerra com parcial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mocks.NewMockClient(ctrl)

		cfg := testConfig()
		cfg.GSC.MaxPages = 2

		// A API nunca devolve página curta
		mockClient.EXPECT().
			QuerySearchAnalytics(gomock.Any(), gomock.Any()).
			Return(makeAPIRows(0, 3), nil).
			Times(2)

		service := &GSCIntegrator{
			cfg:    cfg,
			Client: mockClient,
			sleep:  func(time.Duration) {},
		}

		data, err := service.FetchSearchAnalytics("https://example.com/", startDate, endDate, []string{domain.DimensionDate}, nil)

		assert.NoError(t, err)
		assert.False(t, data.Complete)
		assert.Len(t, data.Rows, 6)
	})
}

func TestFetchSearchAnalytics_Progresso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	pages := [][]gscdomain.SearchAnalyticsRow{
		makeAPIRows(0, 3),
		makeAPIRows(3, 3),
		makeAPIRows(6, 1),
	}
	call := 0
	mockClient.EXPECT().
		QuerySearchAnalytics(gomock.Any(), gomock.Any()).
		DoAndReturn(func(string, *gscdomain.SearchAnalyticsQuery) ([]gscdomain.SearchAnalyticsRow, error) {
			page := pages[call]
			call++
			return page, nil
		}).Times(3)

	service := &GSCIntegrator{
		cfg:    testConfig(),
		Client: mockClient,
		sleep:  func(time.Duration) {},
	}

	reported := make([]int, 0)
	progress := func(rowsDownloaded int) {
		reported = append(reported, rowsDownloaded)
	}

	data, err := service.FetchSearchAnalytics("https://example.com/",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		[]string{domain.DimensionDate}, progress)

	assert.NoError(t, err)
	assert.True(t, data.Complete)

	// O progresso reporta o acumulado após cada página, sempre crescente
	assert.Equal(t, []int{3, 6, 7}, reported)
}

func TestListVerifiedSites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		ListSites().
		Return([]gscdomain.SiteEntry{
			{SiteURL: "https://a.example.com/", PermissionLevel: "siteOwner"},
			{SiteURL: "https://b.example.com/", PermissionLevel: gscdomain.PermissionUnverified},
			{SiteURL: "sc-domain:c.example.com", PermissionLevel: "siteFullUser"},
		}, nil)

	service := New(testConfig(), mockClient)

	sites, err := service.ListVerifiedSites()

	assert.NoError(t, err)
	assert.Len(t, sites, 2)
	assert.Equal(t, "https://a.example.com/", sites[0].SiteURL)
	assert.Equal(t, "sc-domain:c.example.com", sites[1].SiteURL)
}
