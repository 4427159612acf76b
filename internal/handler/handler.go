package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"payroll-engine/internal/engine"
	"payroll-engine/internal/model"
)

const contentTypeJSON = "application/json"

type Handler struct {
	logger          *zap.Logger
	defaultTenantID string
}

func New(logger *zap.Logger, defaultTenantID string) *Handler {
	return &Handler{logger: logger, defaultTenantID: defaultTenantID}
}

// Handle routes requests; it is the fasthttp.RequestHandler of the server.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		h.calculate(ctx)
	case "/healthz":
		ctx.SetContentType(contentTypeJSON)
		ctx.SetBodyString(`{"status":"ok"}`)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) calculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Employees) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one employee is required")
		return
	}

	if req.TenantID == "" {
		req.TenantID = h.defaultTenantID
	}

	resp := engine.Process(&req)

	h.logger.Info("payroll calculated",
		zap.String("tenant_id", resp.CalculationMetadata.TenantID),
		zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
		zap.String("outcome", resp.CalculationMetadata.CalculationOutcome),
		zap.Int("payslips", len(resp.CalculationResult.Payslips)),
		zap.Int64("duration_ms", resp.CalculationMetadata.CalculationDurationMs))

	body, err := json.Marshal(resp)
	if err != nil {
		h.logger.Error("encode response", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}

	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
