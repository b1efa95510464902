package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/deliveries/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes_CODSummaryPaths(t *testing.T) {
	paths := []string{"/rider/orders/cod-summary", "/rider/cod/summary"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockDeliveryUC(ctrl)
			riderID := uuid.New()
			mockUC.EXPECT().CODSummary(gomock.Any(), riderID).Return(&models.CODSummary{}, nil)

			e := echo.New()
			rider := e.Group("/rider", func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					c.Set(constants.CtxRiderID, riderID)
					return next(c)
				}
			})
			NewHandler(mockUC, &models.Config{}).RegisterRoutes(rider, e.Group("/admin"))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
