package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

var proofExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// UploadProof stores a proof-of-delivery image for an open task and returns
// its URL, to be sent with the delivery confirmation
func (uc *DeliveryUC) UploadProof(ctx context.Context, riderID, taskID uuid.UUID, upload models.ProofUpload) (*models.ProofUploadResponse, error) {
	ext, ok := proofExtensions[upload.ContentType]
	if !ok || !uc.proofTypeAllowed(upload.ContentType) {
		return nil, apperror.Validation("Unsupported image type: " + upload.ContentType)
	}
	if upload.Size <= 0 || int64(len(upload.Body)) != upload.Size {
		return nil, apperror.Validation("Image is empty or truncated")
	}
	if limit := uc.cfg.Storage.MaxProofBytes; limit > 0 && upload.Size > limit {
		return nil, apperror.Validation(fmt.Sprintf("Image exceeds %d bytes", limit))
	}

	task, err := uc.ownedTask(ctx, riderID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status.IsTerminal() {
		return nil, apperror.Conflictf("cannot attach proof to a %s task", task.Status)
	}

	key := fmt.Sprintf("proofs/%s/%s/%s.%s", riderID, taskID, uuid.New(), ext)
	url, err := uc.deliveryGW.StoreProof(ctx, key, upload.ContentType, bytes.NewReader(upload.Body), upload.Size)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to store proof of delivery")
	}

	logger.InfoCtx(ctx, "Proof of delivery stored",
		logger.TaskID(taskID),
		logger.RiderID(riderID),
		logger.String("key", key))

	return &models.ProofUploadResponse{URL: url}, nil
}

func (uc *DeliveryUC) proofTypeAllowed(contentType string) bool {
	allowed := uc.cfg.Delivery.ProofContentType
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}
