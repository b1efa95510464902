package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadProof_Success(t *testing.T) {
	uc, repo, gw := setupUC(t)
	riderID := uuid.New()
	task := newTask(riderID, models.TaskStatusOutForDelivery, 0)
	body := []byte("jpeg-bytes")

	repo.EXPECT().GetTask(gomock.Any(), riderID, task.ID).Return(task, nil)
	gw.EXPECT().StoreProof(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any(), int64(len(body))).
		DoAndReturn(func(_ context.Context, key, _ string, r io.Reader, _ int64) (string, error) {
			prefix := "proofs/" + riderID.String() + "/" + task.ID.String() + "/"
			assert.True(t, strings.HasPrefix(key, prefix), key)
			assert.True(t, strings.HasSuffix(key, ".jpg"), key)
			data, _ := io.ReadAll(r)
			assert.Equal(t, body, data)
			return "https://cdn.example.com/" + key, nil
		})

	resp, err := uc.UploadProof(context.Background(), riderID, task.ID, models.ProofUpload{
		ContentType: "image/jpeg",
		Size:        int64(len(body)),
		Body:        body,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.URL, "https://cdn.example.com/proofs/"))
}

func TestUploadProof_Rejections(t *testing.T) {
	riderID := uuid.New()

	testCases := []struct {
		name   string
		upload models.ProofUpload
	}{
		{name: "unsupported type", upload: models.ProofUpload{ContentType: "application/pdf", Size: 3, Body: []byte("pdf")}},
		{name: "empty body", upload: models.ProofUpload{ContentType: "image/png"}},
		{name: "too large", upload: models.ProofUpload{ContentType: "image/png", Size: 2048, Body: make([]byte, 2048)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _ := setupUC(t)

			_, err := uc.UploadProof(context.Background(), riderID, uuid.New(), tc.upload)

			assert.True(t, apperror.Is(err, apperror.KindValidation))
		})
	}
}

func TestUploadProof_TerminalTask(t *testing.T) {
	uc, repo, _ := setupUC(t)
	riderID := uuid.New()
	task := newTask(riderID, models.TaskStatusDelivered, 0)
	repo.EXPECT().GetTask(gomock.Any(), riderID, task.ID).Return(task, nil)

	_, err := uc.UploadProof(context.Background(), riderID, task.ID, models.ProofUpload{ContentType: "image/webp", Size: 1, Body: []byte("x")})

	assert.True(t, apperror.Is(err, apperror.KindConflict))
}

func TestUploadProof_StorageFailure(t *testing.T) {
	uc, repo, gw := setupUC(t)
	riderID := uuid.New()
	task := newTask(riderID, models.TaskStatusPickedUp, 0)
	repo.EXPECT().GetTask(gomock.Any(), riderID, task.ID).Return(task, nil)
	gw.EXPECT().StoreProof(gomock.Any(), gomock.Any(), "image/png", gomock.Any(), int64(1)).
		Return("", errors.New("AccessDenied"))

	_, err := uc.UploadProof(context.Background(), riderID, task.ID, models.ProofUpload{ContentType: "image/png", Size: 1, Body: []byte("x")})

	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}
