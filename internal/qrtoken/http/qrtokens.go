package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/domain"
	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/service"
	"github.com/aussiebroadwan/qrtoken/pkg/httpx"
	"github.com/aussiebroadwan/qrtoken/pkg/qrtokensdk"
	"github.com/aussiebroadwan/qrtoken/pkg/slogx"
)

// QRTokenHandler serves the /qrtoken endpoints.
type QRTokenHandler struct {
	QRTokenService *service.QRTokenService
}

// HandleCreate handles POST /qrtoken
//
//	@Summary		Store QR Token
//	@Description	Stores a token issued by the QR generator. The QR image must be a base64 PNG that encodes the token.
//	@Description	Timestamps accept any ISO-8601 form; values without an offset are read in the server's local zone.
//	@Tags			QRToken
//	@Accept			json
//	@Produce		json
//	@Param			request	body		qrtokensdk.CreateQRTokenRequest	true	"Issued token record"
//	@Success		201		{object}	qrtokensdk.QRTokenResponse		"success, message, data"
//	@Failure		400		{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Failure		429		{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Router			/qrtoken [post].
func (h *QRTokenHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req qrtokensdk.CreateQRTokenRequest
	if err := httpx.DecodeAndValidate(w, r, &req); err != nil {
		qrtokensdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	q, err := h.QRTokenService.Create(r.Context(), domain.TokenRecord{
		Token:      req.Token,
		EmployeeID: req.EmployeeID,
		CreatedAt:  req.CreatedAt,
		ExpiresAt:  req.ExpiresAt,
		Used:       req.Used,
		QRCode:     req.QRCode,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to create qr token")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, qrtokensdk.QRTokenResponse{
		Success: true,
		Message: "QR token created successfully",
		Data:    toWire(q),
	})
}

// HandleList handles GET /qrtoken
//
//	@Summary		List QR Tokens
//	@Description	Returns every stored token, newest first.
//	@Tags			QRToken
//	@Produce		json
//	@Success		200	{object}	qrtokensdk.QRTokenListResponse	"success, data"
//	@Failure		500	{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Router			/qrtoken [get].
func (h *QRTokenHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.QRTokenService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list qr tokens")
		return
	}

	data := make([]qrtokensdk.QRToken, len(tokens))
	for i, q := range tokens {
		data[i] = *toWire(q)
	}

	httpx.WriteJSON(w, http.StatusOK, qrtokensdk.QRTokenListResponse{Success: true, Data: data})
}

// HandleGet handles GET /qrtoken/{id}
//
//	@Summary		Get QR Token
//	@Description	Returns a stored token by its numeric id.
//	@Tags			QRToken
//	@Produce		json
//	@Param			id	path		int							true	"Token id"
//	@Success		200	{object}	qrtokensdk.QRTokenResponse	"success, data"
//	@Failure		400	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Router			/qrtoken/{id} [get].
func (h *QRTokenHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	q, err := h.QRTokenService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to get qr token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, qrtokensdk.QRTokenResponse{Success: true, Data: toWire(q)})
}

// HandleFindByToken handles GET /qrtoken/by-token/{token}
//
//	@Summary		Find QR Token by Value
//	@Description	Looks a token up by its value. A miss is a successful response with null data.
//	@Tags			QRToken
//	@Produce		json
//	@Param			token	path		string						true	"Token value"
//	@Success		200		{object}	qrtokensdk.QRTokenResponse	"success, message, data (null when absent)"
//	@Failure		500		{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Router			/qrtoken/by-token/{token} [get].
func (h *QRTokenHandler) HandleFindByToken(w http.ResponseWriter, r *http.Request) {
	q, err := h.QRTokenService.FindByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err, "failed to find qr token")
		return
	}

	resp := qrtokensdk.QRTokenResponse{Success: true}
	if q != nil {
		resp.Data = toWire(*q)
	} else {
		resp.Message = "QR token not found"
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleValidate handles GET /qrtoken/validate
//
//	@Summary		Validate QR Token
//	@Description	Reports whether the token exists, is unused and has not expired. The body is a bare JSON boolean.
//	@Tags			QRToken
//	@Produce		json
//	@Param			token	query		string						true	"Token value"
//	@Success		200		{boolean}	boolean						"true or false"
//	@Failure		400		{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Router			/qrtoken/validate [get].
func (h *QRTokenHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		qrtokensdk.ErrInvalidRequest.WithDescription("token query parameter is required").WriteError(w)
		return
	}

	valid, err := h.QRTokenService.Validate(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err, "failed to validate qr token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, valid)
}

// HandleUpdate handles PATCH /qrtoken/{id}
//
//	@Summary		Update QR Token
//	@Description	Applies a partial update. Omitted fields are left unchanged; the result must still be a valid record.
//	@Tags			QRToken
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Token id"
//	@Param			request	body		qrtokensdk.UpdateQRTokenRequest	true	"Fields to change"
//	@Success		200		{object}	qrtokensdk.QRTokenResponse		"success, message, data"
//	@Failure		400		{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	qrtokensdk.ErrorResponse		"error, error_description"
//	@Router			/qrtoken/{id} [patch].
func (h *QRTokenHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req qrtokensdk.UpdateQRTokenRequest
	if err := httpx.DecodeAndValidate(w, r, &req); err != nil {
		qrtokensdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	q, err := h.QRTokenService.Update(r.Context(), id, domain.QRTokenPatch{
		Token:      req.Token,
		EmployeeID: req.EmployeeID,
		CreatedAt:  req.CreatedAt,
		ExpiresAt:  req.ExpiresAt,
		Used:       req.Used,
		QRCode:     req.QRCode,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to update qr token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, qrtokensdk.QRTokenResponse{
		Success: true,
		Message: "QR token updated successfully",
		Data:    toWire(q),
	})
}

// HandleMarkUsed handles PATCH /qrtoken/{id}/mark-used
//
//	@Summary		Mark QR Token Used
//	@Description	Flags a token as redeemed. Marking an already used token succeeds.
//	@Tags			QRToken
//	@Produce		json
//	@Param			id	path		int							true	"Token id"
//	@Success		200	{object}	qrtokensdk.QRTokenResponse	"success, message, data"
//	@Failure		400	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Router			/qrtoken/{id}/mark-used [patch].
func (h *QRTokenHandler) HandleMarkUsed(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	q, err := h.QRTokenService.MarkUsed(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to mark qr token used")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, qrtokensdk.QRTokenResponse{
		Success: true,
		Message: "QR token marked as used",
		Data:    toWire(q),
	})
}

// HandleDelete handles DELETE /qrtoken/{id}
//
//	@Summary		Delete QR Token
//	@Description	Removes a stored token.
//	@Tags			QRToken
//	@Produce		json
//	@Param			id	path		int							true	"Token id"
//	@Success		200	{object}	qrtokensdk.MessageResponse	"success, message"
//	@Failure		400	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	qrtokensdk.ErrorResponse	"error, error_description"
//	@Router			/qrtoken/{id} [delete].
func (h *QRTokenHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.QRTokenService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "failed to delete qr token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, qrtokensdk.MessageResponse{
		Success: true,
		Message: "QR token deleted successfully",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		qrtokensdk.ErrInvalidRequest.WithDescription("id must be a positive integer").WriteError(w)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrQRTokenNotFound):
		qrtokensdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrQRTokenExists):
		qrtokensdk.ErrConflict.WriteError(w)
	case errors.Is(err, service.ErrInvalidRecord), errors.Is(err, service.ErrQRMismatch):
		qrtokensdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error(msg, "error", err)
		qrtokensdk.ErrServerError.WriteError(w)
	}
}

func toWire(q domain.QRToken) *qrtokensdk.QRToken {
	return &qrtokensdk.QRToken{
		ID:         q.ID,
		Token:      q.Token,
		EmployeeID: q.EmployeeID,
		CreatedAt:  q.CreatedAt,
		ExpiresAt:  q.ExpiresAt,
		Used:       q.Used,
		QRCode:     q.QRCode,
		UpdatedAt:  q.UpdatedAt,
	}
}
