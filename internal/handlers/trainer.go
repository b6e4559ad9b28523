package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-pokedex/internal/middlewares"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

//go:generate mockgen -source=trainer.go -destination=trainer_mock_test.go -package=handlers

// TrainerManager defines the trainer profile operations of the caller.
type TrainerManager interface {
	Create(ctx context.Context, identity models.Identity, trainerName, imgURL string) (*models.Trainer, error)
	Get(ctx context.Context, identity models.Identity) (*models.Trainer, error)
	Update(ctx context.Context, identity models.Identity, patch models.TrainerPatch) (*models.Trainer, error)
	Delete(ctx context.Context, identity models.Identity) error
}

// CreateTrainerRequest represents the JSON body for creating a trainer
// swagger:model CreateTrainerRequest
type CreateTrainerRequest struct {
	// Trainer name
	// required: true
	// default: Sacha
	TrainerName string `json:"trainerName" validate:"required,max=100"`

	// Avatar path
	// default: /medias/trainers/sacha.png
	ImgURL string `json:"imgUrl"`
}

// TrainerResponse carries a message and the affected trainer
// swagger:model TrainerResponse
type TrainerResponse struct {
	// Success message
	// default: Trainer created successfully
	Message string          `json:"message"`
	Trainer *models.Trainer `json:"trainer"`
}

func identityFrom(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "access denied")
	}
	return identity, ok
}

// NewTrainerCreateHandler returns an HTTP handler creating the caller's trainer.
// @Summary Create a trainer
// @Description Opens the trainer profile of the authenticated user. One per user.
// @Tags trainer
// @Accept json
// @Produce json
// @Param request body handlers.CreateTrainerRequest true "Trainer"
// @Success 201 {object} handlers.TrainerResponse "Trainer created"
// @Failure 400 {object} handlers.ErrorResponse "Trainer already exists / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /trainer [post]
// @Security BearerAuth
func NewTrainerCreateHandler(svc TrainerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(w, r)
		if !ok {
			return
		}

		var req CreateTrainerRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		t, err := svc.Create(r.Context(), identity, req.TrainerName, req.ImgURL)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, TrainerResponse{
			Message: "Trainer created successfully",
			Trainer: t,
		})
	}
}

// NewTrainerGetHandler returns an HTTP handler fetching the caller's trainer.
// @Summary Get my trainer
// @Tags trainer
// @Produce json
// @Success 200 {object} models.Trainer "Trainer"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No trainer for this user"
// @Router /trainer [get]
// @Security BearerAuth
func NewTrainerGetHandler(svc TrainerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(w, r)
		if !ok {
			return
		}

		t, err := svc.Get(r.Context(), identity)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, t)
	}
}

// NewTrainerUpdateHandler returns an HTTP handler editing the caller's trainer.
// @Summary Update my trainer
// @Description Changes the trainer name and avatar present in the body
// @Tags trainer
// @Accept json
// @Produce json
// @Param request body models.TrainerPatch true "Fields to change"
// @Success 200 {object} handlers.TrainerResponse "Trainer updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "No trainer for this user"
// @Router /trainer [put]
// @Security BearerAuth
func NewTrainerUpdateHandler(svc TrainerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(w, r)
		if !ok {
			return
		}

		var patch models.TrainerPatch
		if err := decodeRequest(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		t, err := svc.Update(r.Context(), identity, patch)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, TrainerResponse{
			Message: "Trainer updated successfully",
			Trainer: t,
		})
	}
}

// NewTrainerDeleteHandler returns an HTTP handler deleting the caller's trainer.
// @Summary Delete my trainer
// @Tags trainer
// @Success 204 "Trainer deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No trainer for this user"
// @Router /trainer [delete]
// @Security BearerAuth
func NewTrainerDeleteHandler(svc TrainerManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), identity); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
