package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeline/config"
	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PairingHandlerParams holds dependencies for PairingHandler, injected by Fx.
type PairingHandlerParams struct {
	fx.In

	PairingUC  usecase.PairingUsecase
	RegistryUC usecase.CodeRegistryUsecase
	QRCodeSvc  service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// PairingHandler serves both sides of the pairing handshake
type PairingHandler struct {
	pairingUC        usecase.PairingUsecase
	registryUC       usecase.CodeRegistryUsecase
	qrCodeSvc        service.QRCodeService
	handshakeTimeout time.Duration
	logger           *slog.Logger
}

// NewPairingHandler is the constructor for PairingHandler
func NewPairingHandler(params PairingHandlerParams) *PairingHandler {
	return &PairingHandler{
		pairingUC:        params.PairingUC,
		registryUC:       params.RegistryUC,
		qrCodeSvc:        params.QRCodeSvc,
		handshakeTimeout: params.Config.Pairing.HandshakeTimeout,
		logger:           params.Logger,
	}
}

// DecisionRequest represents the watcher's approve or reject call
type DecisionRequest struct {
	Decision string         `json:"decision" validate:"required,oneof=approved rejected"`
	Device   *DeviceRequest `json:"device" validate:"omitempty"`
}

// ApprovalResponse is the polled approval state
type ApprovalResponse struct {
	ApprovalState entity.ApprovalState `json:"approval_state"`
}

// ScanRequest carries the raw content of a scanned pairing QR code
type ScanRequest struct {
	Content string `json:"content" validate:"required"`
}

// CodeLookupResponse is what a watcher sees before deciding
type CodeLookupResponse struct {
	Code          string               `json:"code"`
	FamilyID      string               `json:"family_id"`
	SubjectName   string               `json:"subject_name"`
	ApprovalState entity.ApprovalState `json:"approval_state"`
}

// GetApproval returns the approval state (polling path)
func (h *PairingHandler) GetApproval(c echo.Context) error {
	id, ok := parseFamilyID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	state, err := h.pairingUC.GetApproval(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ApprovalResponse{ApprovalState: state})
}

// LookupCode resolves a connection code for the watcher
func (h *PairingHandler) LookupCode(c echo.Context) error {
	code, err := bindCode(c)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCodeNotFound)
	}

	family, err := h.registryUC.Lookup(c.Request().Context(), code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CodeLookupResponse{
		Code:          code,
		FamilyID:      family.ID.String(),
		SubjectName:   family.SubjectName,
		ApprovalState: family.ApprovalState,
	})
}

// ScanCode resolves scanned QR content the way LookupCode resolves a typed
// code, so the watcher app can hand over the payload as is.
func (h *PairingHandler) ScanCode(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	code, err := h.qrCodeSvc.ParsePairingQR(req.Content)
	if err != nil {
		h.logger.InfoContext(c.Request().Context(), "Rejected scanned QR content", slog.Any("error", err))

		return response.BadRequest(c, "INVALID_QR", "Not a pairing QR code")
	}

	family, err := h.registryUC.Lookup(c.Request().Context(), code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CodeLookupResponse{
		Code:          code,
		FamilyID:      family.ID.String(),
		SubjectName:   family.SubjectName,
		ApprovalState: family.ApprovalState,
	})
}

// Decide records the watcher decision. Repeated calls are no-ops.
func (h *PairingHandler) Decide(c echo.Context) error {
	code, err := bindCode(c)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCodeNotFound)
	}

	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	decision, _ := entity.ParseDecision(req.Decision)
	result, err := h.pairingUC.SetApproval(c.Request().Context(), &usecase.DecisionInput{
		Code:     code,
		Decision: decision,
		Device:   req.Device.toDeviceInfo(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// CancelPairing ends the handshake from the primary device. The family_id
// query parameter scopes the delete to the family that was issued the code.
func (h *PairingHandler) CancelPairing(c echo.Context) error {
	code, err := bindCode(c)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCodeNotFound)
	}

	familyID, err := uuid.Parse(c.QueryParam("family_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	if err := h.pairingUC.CancelPairing(c.Request().Context(), code, familyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPairingQR renders the connection code as a PNG QR code
func (h *PairingHandler) GetPairingQR(c echo.Context) error {
	code, err := bindCode(c)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCodeNotFound)
	}

	// Only codes with an open handshake get an image.
	if _, err := h.registryUC.Lookup(c.Request().Context(), code); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GeneratePairingQR(code)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to render QR code", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrInternalError)
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
