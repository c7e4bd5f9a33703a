package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/deskutil/internal/application/port"
	"github.com/bnema/deskutil/internal/application/port/mocks"
	"github.com/bnema/deskutil/internal/application/usecase"
	"github.com/bnema/deskutil/internal/domain/entity"
	"github.com/bnema/deskutil/internal/logging"
)

type httpStatusError int

func (e httpStatusError) Error() string   { return "unexpected HTTP status" }
func (e httpStatusError) HTTPStatus() int { return int(e) }

func jsonLogContext(buf *bytes.Buffer) context.Context {
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	return logging.WithContext(context.Background(), logger)
}

func countLevel(logs, level string) int {
	n := 0
	for _, line := range strings.Split(strings.TrimSpace(logs), "\n") {
		if strings.Contains(line, `"level":"`+level+`"`) {
			n++
		}
	}
	return n
}

var testTask = entity.DownloadTask{
	SourceURL:            "https://example.com/sub.yaml",
	DestinationDirectory: "/tmp/clash",
	DestinationFilename:  "config.yaml",
}

func TestFetchFileUseCase_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFileFetcher(ctrl)

	result := &entity.FetchResult{
		Task:       testTask,
		Path:       "/tmp/clash/config.yaml",
		Bytes:      2048,
		StatusCode: 200,
		Duration:   120 * time.Millisecond,
	}
	fetcher.EXPECT().Fetch(gomock.Any(), testTask).Return(result, nil)

	var events []port.DownloadEventType
	handler := port.DownloadEventFunc(func(_ context.Context, e port.DownloadEvent) {
		events = append(events, e.Type)
	})

	var logs bytes.Buffer
	uc := usecase.NewFetchFileUseCase(fetcher, handler)
	outcome := uc.Execute(jsonLogContext(&logs), usecase.FetchFileInput{Task: testTask})

	require.True(t, outcome.OK())
	assert.Equal(t, result, outcome.Result)
	assert.NotEmpty(t, outcome.AttemptID)
	assert.Equal(t, []port.DownloadEventType{port.DownloadEventStarted, port.DownloadEventFinished}, events)
	assert.Contains(t, logs.String(), "/tmp/clash/config.yaml")
	assert.Contains(t, logs.String(), "2.0 kB")
	assert.Zero(t, countLevel(logs.String(), "error"))
}

func TestFetchFileUseCase_HTTPFailureLogsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFileFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), testTask).Return(nil, httpStatusError(404))

	var logs bytes.Buffer
	uc := usecase.NewFetchFileUseCase(fetcher, nil)
	outcome := uc.Execute(jsonLogContext(&logs), usecase.FetchFileInput{Task: testTask})

	assert.False(t, outcome.OK())
	assert.Equal(t, "server answered HTTP 404", outcome.Reason)
	assert.Equal(t, 1, countLevel(logs.String(), "error"))
	assert.Contains(t, logs.String(), outcome.AttemptID)
}

func TestFetchFileUseCase_FallbackFilenameResolvedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFileFetcher(ctrl)

	bare := entity.DownloadTask{
		SourceURL:            "https://example.com/",
		DestinationDirectory: "/tmp/clash",
	}

	var fetched entity.DownloadTask
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task entity.DownloadTask) (*entity.FetchResult, error) {
			fetched = task
			return &entity.FetchResult{Task: task, Path: task.DestinationPath(time.Now().Add(time.Hour))}, nil
		})

	var started port.DownloadEvent
	handler := port.DownloadEventFunc(func(_ context.Context, e port.DownloadEvent) {
		if e.Type == port.DownloadEventStarted {
			started = e
		}
	})

	outcome := usecase.NewFetchFileUseCase(fetcher, handler).
		Execute(testContext(), usecase.FetchFileInput{Task: bare})

	require.True(t, outcome.OK())
	assert.True(t, strings.HasPrefix(fetched.DestinationFilename, "download_"))
	assert.Equal(t, started.Destination, outcome.Result.Path)
}

func TestFetchFileUseCase_FailureReasons(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "timeout", err: context.DeadlineExceeded, want: "timed out"},
		{name: "cancelled", err: context.Canceled, want: "cancelled"},
		{name: "invalid task", err: entity.ErrInvalidDownloadTask, want: "invalid configuration: invalid download task"},
		{name: "network", err: errors.New("connection refused"), want: "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockFileFetcher(ctrl)
			fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			var events []port.DownloadEvent
			handler := port.DownloadEventFunc(func(_ context.Context, e port.DownloadEvent) {
				events = append(events, e)
			})

			outcome := usecase.NewFetchFileUseCase(fetcher, handler).
				Execute(testContext(), usecase.FetchFileInput{Task: testTask})

			assert.Equal(t, tt.want, outcome.Reason)
			require.ErrorIs(t, outcome.Err, tt.err)
			require.Len(t, events, 2)
			assert.Equal(t, port.DownloadEventFailed, events[1].Type)
			assert.ErrorIs(t, events[1].Error, tt.err)
		})
	}
}

func TestFetchFileUseCase_PanicIsContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFileFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, entity.DownloadTask) (*entity.FetchResult, error) {
			panic("disk on fire")
		})

	uc := usecase.NewFetchFileUseCase(fetcher, nil)

	var outcome entity.FetchOutcome
	require.NotPanics(t, func() {
		outcome = uc.Execute(testContext(), usecase.FetchFileInput{Task: testTask})
	})
	assert.False(t, outcome.OK())
	assert.Contains(t, outcome.Reason, "disk on fire")
}

func TestFetchFileUseCase_UniqueAttemptIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFileFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("x")).Times(2)

	uc := usecase.NewFetchFileUseCase(fetcher, nil)
	first := uc.Execute(testContext(), usecase.FetchFileInput{Task: testTask})
	second := uc.Execute(testContext(), usecase.FetchFileInput{Task: testTask})

	assert.NotEqual(t, first.AttemptID, second.AttemptID)
}
