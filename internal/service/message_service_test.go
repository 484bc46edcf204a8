package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/apierrors"
	"github.com/ppopeskul/telegram-dashboard/internal/media"
	"github.com/ppopeskul/telegram-dashboard/internal/models"
	"github.com/ppopeskul/telegram-dashboard/internal/service"
	"github.com/ppopeskul/telegram-dashboard/internal/service/mocks"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type recordingUploader struct {
	name        string
	contentType string
	err         error
}

func (u *recordingUploader) Upload(_ context.Context, name, contentType string, _ []byte) (string, error) {
	u.name = name
	u.contentType = contentType
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn.example.com/uploads/" + name, nil
}

func newMessageService(t *testing.T, uploader media.Uploader) (service.MessageService, *mocks.MockMessageBackend) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockMessageBackend(ctrl)
	return service.NewMessageService(testConfig(), backend, uploader, zap.NewNop()), backend
}

func TestMessageService_SendText(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SendTextRequest
		valid   bool
		field   string
		backend error
	}{
		{name: "queued", req: models.SendTextRequest{To: " @ann ", Text: "hello"}, valid: true},
		{name: "missing recipient", req: models.SendTextRequest{To: "  ", Text: "hello"}, field: "to"},
		{name: "missing text", req: models.SendTextRequest{To: "@ann"}, field: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, backend := newMessageService(t, nil)
			if tt.valid {
				backend.EXPECT().SendText(gomock.Any(), sessionID, models.SendTextRequest{To: "@ann", Text: "hello"}).
					Return(&models.MessageResponse{JobID: "job-1", Status: "queued"}, nil)
			}

			resp, err := svc.SendText(context.Background(), sessionID, tt.req)
			if !tt.valid {
				var verr *apierrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, tt.field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "job-1", resp.JobID)
		})
	}
}

func TestMessageService_SendMedia(t *testing.T) {
	tests := []struct {
		name  string
		req   models.SendMediaRequest
		valid bool
	}{
		{
			name:  "photo by url",
			req:   models.SendMediaRequest{Kind: models.MediaPhoto, To: "@ann", MediaURL: "https://cdn.example.com/a.png", Caption: "look"},
			valid: true,
		},
		{
			name:  "data url",
			req:   models.SendMediaRequest{Kind: models.MediaFile, To: "@ann", MediaURL: "data:text/plain;base64,aGk="},
			valid: true,
		},
		{
			name: "unknown kind",
			req:  models.SendMediaRequest{Kind: "sticker", To: "@ann", MediaURL: "https://cdn.example.com/a.webp"},
		},
		{
			name: "relative url",
			req:  models.SendMediaRequest{Kind: models.MediaVideo, To: "@ann", MediaURL: "/files/a.mp4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, backend := newMessageService(t, nil)
			if tt.valid {
				backend.EXPECT().SendMedia(gomock.Any(), sessionID, tt.req).
					Return(&models.MessageResponse{JobID: "job-2"}, nil)
			}

			_, err := svc.SendMedia(context.Background(), sessionID, tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, apierrors.IsValidation(err))
			}
		})
	}
}

func TestMessageService_SendMediaFile(t *testing.T) {
	t.Run("validated, uploaded and sent", func(t *testing.T) {
		uploader := &recordingUploader{}
		svc, backend := newMessageService(t, uploader)
		backend.EXPECT().SendMedia(gomock.Any(), sessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req models.SendMediaRequest) (*models.MessageResponse, error) {
				assert.Equal(t, models.MediaPhoto, req.Kind)
				assert.True(t, strings.HasPrefix(req.MediaURL, "https://cdn.example.com/uploads/"))
				assert.Equal(t, "cat", req.Caption)
				return &models.MessageResponse{JobID: "job-3"}, nil
			})

		resp, err := svc.SendMediaFile(context.Background(), sessionID, service.MediaFile{
			Kind:     models.MediaPhoto,
			To:       "@ann",
			Caption:  "cat",
			Filename: "cat.png",
			Data:     pngBytes,
		})
		require.NoError(t, err)
		assert.Equal(t, "job-3", resp.JobID)
		assert.Equal(t, "image/png", uploader.contentType)
		assert.Equal(t, "cat.png", uploader.name)
	})

	t.Run("disallowed type never uploads", func(t *testing.T) {
		uploader := &recordingUploader{}
		svc, _ := newMessageService(t, uploader)

		_, err := svc.SendMediaFile(context.Background(), sessionID, service.MediaFile{
			Kind:     models.MediaPhoto,
			To:       "@ann",
			Filename: "doc.pdf",
			Data:     []byte("%PDF-1.4\n"),
		})
		assert.True(t, apierrors.IsValidation(err))
		assert.Empty(t, uploader.name)
	})

	t.Run("upload failure", func(t *testing.T) {
		svc, _ := newMessageService(t, &recordingUploader{err: errors.New("bucket missing")})

		_, err := svc.SendMediaFile(context.Background(), sessionID, service.MediaFile{
			Kind: models.MediaPhoto, To: "@ann", Filename: "cat.png", Data: pngBytes,
		})
		assert.ErrorContains(t, err, "bucket missing")
	})

	t.Run("no uploader", func(t *testing.T) {
		svc, _ := newMessageService(t, nil)

		_, err := svc.SendMediaFile(context.Background(), sessionID, service.MediaFile{
			Kind: models.MediaPhoto, To: "@ann", Filename: "cat.png", Data: pngBytes,
		})
		assert.ErrorIs(t, err, media.ErrUploaderMissing)
	})
}

func TestMessageService_SendBulk(t *testing.T) {
	svc, backend := newMessageService(t, nil)
	backend.EXPECT().SendBulk(gomock.Any(), sessionID, models.SendBulkRequest{
		Recipients: []string{"@ann", "@bob"},
		Text:       "hi all",
		DelayMs:    models.DefaultBulkDelayMs,
	}).Return([]models.MessageResponse{{JobID: "a"}, {JobID: "b"}}, nil)

	resp, err := svc.SendBulk(context.Background(), sessionID, models.SendBulkRequest{
		Recipients: []string{" @ann", "", "@bob "},
		Text:       "hi all",
	})
	require.NoError(t, err)
	assert.Len(t, resp, 2)

	_, err = svc.SendBulk(context.Background(), sessionID, models.SendBulkRequest{Recipients: []string{" "}, Text: "x"})
	assert.True(t, apierrors.IsValidation(err))
}

func TestMessageService_WatchJob(t *testing.T) {
	svc, backend := newMessageService(t, nil)
	gomock.InOrder(
		backend.EXPECT().GetJobStatus(gomock.Any(), "job-1").Return(&models.MessageJob{ID: "job-1", Status: "pending"}, nil).Times(2),
		backend.EXPECT().GetJobStatus(gomock.Any(), "job-1").Return(&models.MessageJob{ID: "job-1", Status: models.JobStatusSent}, nil),
	)

	w, err := svc.WatchJob(context.Background(), "job-1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), eventually)
	defer cancel()
	job, err := w.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusSent, job.Status)
	assert.Eventually(t, func() bool { return !w.Running() }, eventually, 10*time.Millisecond)

	_, err = svc.WatchJob(context.Background(), " ")
	assert.True(t, apierrors.IsValidation(err))
}
