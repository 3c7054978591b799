package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ritamartins/budgie/internal/budget"
	"github.com/ritamartins/budgie/internal/importer"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	importSvc *importer.Service
	budgetSvc *budget.Service
}

func NewHandler(importSvc *importer.Service, budgetSvc *budget.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		budgetSvc: budgetSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importSuccessResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	format := importer.Format(r.FormValue("format"))

	params, err := h.importSvc.Parse(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := h.budgetSvc.AddBatch(r.Context(), params)
	if err != nil {
		if errors.Is(err, budget.ErrInvalidAmount) || errors.Is(err, budget.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importSuccessResponse{Imported: imported}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
