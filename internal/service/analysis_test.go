package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/logwise-app/logwise/internal/domain"
	"github.com/logwise-app/logwise/internal/ingest"
	"github.com/logwise-app/logwise/internal/metrics"
	brokermocks "github.com/logwise-app/logwise/internal/mocks/broker"
	repomocks "github.com/logwise-app/logwise/internal/mocks/repository"
	scorermocks "github.com/logwise-app/logwise/internal/mocks/scorer"
	"github.com/logwise-app/logwise/internal/repo"
	"github.com/logwise-app/logwise/internal/service"
)

const sampleLog = "INFO start\nERROR fail fail fail\nINFO end\n"

type analysisMocks struct {
	sessionRepo *repomocks.MockSession
	logRepo     *repomocks.MockLog
	chatRepo    *repomocks.MockChat
	scorer      *scorermocks.MockScorer
	producer    *brokermocks.MockProducer
}

func newAnalysisService(t *testing.T) (*service.Services, analysisMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := analysisMocks{
		sessionRepo: repomocks.NewMockSession(ctrl),
		logRepo:     repomocks.NewMockLog(ctrl),
		chatRepo:    repomocks.NewMockChat(ctrl),
		scorer:      scorermocks.NewMockScorer(ctrl),
		producer:    brokermocks.NewMockProducer(ctrl),
	}

	services := service.NewServices(service.ServicesDependencies{
		Repos: &repo.Repositories{
			Session: m.sessionRepo,
			Log:     m.logRepo,
			Chat:    m.chatRepo,
		},
		Scorer:         m.scorer,
		Threshold:      15,
		Counters:       metrics.NewTestCounters(),
		BrokerProducer: m.producer,
	})

	return services, m
}

func lengthScore(ctx context.Context, vectors [][]float64) ([]float64, error) {
	scores := make([]float64, len(vectors))
	for i, v := range vectors {
		scores[i] = v[0]
	}
	return scores, nil
}

func TestAnalysisService_Analyze(t *testing.T) {
	ctx := context.Background()

	input := service.AnalyzeInput{
		Title:    "nightly run",
		Filename: "app.log",
		Content:  []byte(sampleLog),
		Format:   ingest.FormatPlain,
	}

	t.Run("success", func(t *testing.T) {
		services, m := newAnalysisService(t)

		m.scorer.EXPECT().Score(gomock.Any(), gomock.Any()).DoAndReturn(lengthScore)
		m.sessionRepo.EXPECT().
			CreateSession(ctx, gomock.Any()).
			Return(nil)
		m.logRepo.EXPECT().
			StoreBatch(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sessionID string, records []domain.ScoredRecord) (int, error) {
				assert.NotEmpty(t, sessionID)
				assert.Len(t, records, 3)
				return len(records), nil
			})
		m.chatRepo.EXPECT().
			StoreMessage(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *domain.ChatMessage) (int, error) {
				assert.NotEmpty(t, msg.SessionID)
				assert.Equal(t, domain.ChatRoleAssistant, msg.Role)
				assert.Equal(t, "Logs successfully stored in the local database.", msg.Message)
				return 1, nil
			})
		m.producer.EXPECT().
			SendMessage(ctx, gomock.Any()).
			Return(nil)

		session, err := services.Analysis.Analyze(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "nightly run", session.Title)
		assert.Equal(t, 3, session.TotalLogs)
		assert.Equal(t, 1, session.Anomalies)
		assert.NotEmpty(t, session.ID)
	})

	t.Run("title defaults to filename", func(t *testing.T) {
		services, m := newAnalysisService(t)

		m.scorer.EXPECT().Score(gomock.Any(), gomock.Any()).DoAndReturn(lengthScore)
		m.sessionRepo.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil)
		m.logRepo.EXPECT().StoreBatch(ctx, gomock.Any(), gomock.Any()).Return(3, nil)
		m.chatRepo.EXPECT().StoreMessage(ctx, gomock.Any()).Return(1, nil)
		m.producer.EXPECT().SendMessage(ctx, gomock.Any()).Return(nil)

		untitled := input
		untitled.Title = ""

		session, err := services.Analysis.Analyze(ctx, untitled)

		require.NoError(t, err)
		assert.Equal(t, "app.log", session.Title)
	})

	t.Run("no records stores global milestone", func(t *testing.T) {
		services, m := newAnalysisService(t)

		m.scorer.EXPECT().Score(gomock.Any(), gomock.Any()).DoAndReturn(lengthScore)
		m.chatRepo.EXPECT().
			StoreMessage(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *domain.ChatMessage) (int, error) {
				assert.Empty(t, msg.SessionID)
				assert.Equal(t, domain.ChatRoleAssistant, msg.Role)
				assert.Equal(t, "No valid log entries found in the file.", msg.Message)
				return 1, nil
			})

		empty := input
		empty.Content = []byte("\n\n")

		_, err := services.Analysis.Analyze(ctx, empty)

		assert.ErrorIs(t, err, service.ErrNoRecords)
	})

	t.Run("bad content", func(t *testing.T) {
		services, _ := newAnalysisService(t)

		bad := input
		bad.Content = []byte{0xff, 0xfe}

		_, err := services.Analysis.Analyze(ctx, bad)

		assert.ErrorIs(t, err, ingest.ErrBadFormat)
	})

	t.Run("session repo error", func(t *testing.T) {
		services, m := newAnalysisService(t)

		m.scorer.EXPECT().Score(gomock.Any(), gomock.Any()).DoAndReturn(lengthScore)
		m.sessionRepo.EXPECT().
			CreateSession(ctx, gomock.Any()).
			Return(errors.New("db error"))

		_, err := services.Analysis.Analyze(ctx, input)

		assert.ErrorIs(t, err, service.ErrCannotCreateSession)
	})

	t.Run("log repo error", func(t *testing.T) {
		services, m := newAnalysisService(t)

		m.scorer.EXPECT().Score(gomock.Any(), gomock.Any()).DoAndReturn(lengthScore)
		m.sessionRepo.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil)
		m.logRepo.EXPECT().
			StoreBatch(ctx, gomock.Any(), gomock.Any()).
			Return(0, errors.New("db error"))

		_, err := services.Analysis.Analyze(ctx, input)

		assert.ErrorIs(t, err, service.ErrCannotStoreLogs)
	})

	t.Run("broker failure does not fail the upload", func(t *testing.T) {
		services, m := newAnalysisService(t)

		m.scorer.EXPECT().Score(gomock.Any(), gomock.Any()).DoAndReturn(lengthScore)
		m.sessionRepo.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil)
		m.logRepo.EXPECT().StoreBatch(ctx, gomock.Any(), gomock.Any()).Return(3, nil)
		m.chatRepo.EXPECT().StoreMessage(ctx, gomock.Any()).Return(1, nil)
		m.producer.EXPECT().
			SendMessage(ctx, gomock.Any()).
			Return(errors.New("broker down"))

		_, err := services.Analysis.Analyze(ctx, input)

		assert.NoError(t, err)
	})
}

func TestAnalysisService_GetStats(t *testing.T) {
	type mockBehavior func(r *repomocks.MockLog)

	testCases := []struct {
		name         string
		mockBehavior mockBehavior
		want         domain.SessionStats
		wantErr      bool
	}{
		{
			name: "success",
			mockBehavior: func(r *repomocks.MockLog) {
				r.EXPECT().
					GetStatsBySession(gomock.Any(), "sess-1").
					Return(domain.SessionStats{
						SessionID: "sess-1",
						TotalLogs: 100,
						Anomalies: 7,
						LogsByLevel: []domain.LevelStats{
							{Level: "ERROR", Count: 20},
							{Level: "INFO", Count: 80},
						},
					}, nil)
			},
			want: domain.SessionStats{
				SessionID: "sess-1",
				TotalLogs: 100,
				Anomalies: 7,
				LogsByLevel: []domain.LevelStats{
					{Level: "ERROR", Count: 20},
					{Level: "INFO", Count: 80},
				},
			},
		},
		{
			name: "repository error",
			mockBehavior: func(r *repomocks.MockLog) {
				r.EXPECT().
					GetStatsBySession(gomock.Any(), "sess-1").
					Return(domain.SessionStats{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			services, m := newAnalysisService(t)
			tc.mockBehavior(m.logRepo)

			got, err := services.Analysis.GetStats(context.Background(), "sess-1")

			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
