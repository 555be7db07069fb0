package calc

import (
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/astro-atlas/pkg/adapters"
	"github.com/de-tools/astro-atlas/pkg/astro/bazi"
	"github.com/de-tools/astro-atlas/pkg/astro/dignity"
	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/astro/lots"
	"github.com/de-tools/astro-atlas/pkg/astro/timelords"
	"github.com/de-tools/astro-atlas/pkg/astro/vedic"
	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
	"github.com/de-tools/astro-atlas/pkg/handlers"
	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	errBirthDate = "invalid 'birth_date' format. Expected format: YYYY-MM-DD"
	errBirthTime = "invalid 'birth_time' format. Expected format: HH:MM"
)

type Handler struct {
	now    func() time.Time
	gender fengshui.Gender
	seed   uint64
}

// NewHandler serves the stateless calculators. gender is the default for Kua
// requests that do not name one; seed feeds the vedic ascendant picker.
func NewHandler(now func() time.Time, gender fengshui.Gender, seed uint64) *Handler {
	if now == nil {
		now = time.Now
	}
	if gender == "" {
		gender = fengshui.GenderMale
	}
	return &Handler{now: now, gender: gender, seed: seed}
}

func (h *Handler) GetSign(w http.ResponseWriter, r *http.Request) {
	sign := chi.URLParam(r, "sign")
	if canonical, ok := zodiac.ParseSign(sign); ok {
		sign = canonical
	}
	handlers.WriteJSON(w, r, http.StatusOK, adapters.MapSignToApi(sign))
}

func (h *Handler) GetPillars(w http.ResponseWriter, r *http.Request) {
	var req api.BirthMoment
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	birth, err := time.Parse(domain.DateLayout, req.BirthDate)
	if err != nil {
		http.Error(w, errBirthDate, http.StatusBadRequest)
		return
	}

	var hour *int
	if req.BirthTime != nil && *req.BirthTime != "" {
		tod, err := domain.ParseTimeOfDay(*req.BirthTime)
		if err != nil {
			http.Error(w, errBirthTime, http.StatusBadRequest)
			return
		}
		hour = &tod.Hour
	}

	handlers.WriteJSON(w, r, http.StatusOK, adapters.MapFourPillarsToApi(bazi.Derive(birth, hour)))
}

func (h *Handler) GetKua(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid 'year'. Expected a four digit year", http.StatusBadRequest)
		return
	}

	gender := h.gender
	if g := r.URL.Query().Get("gender"); g != "" {
		parsed, ok := fengshui.ParseGender(g)
		if !ok {
			http.Error(w, "invalid 'gender'. Expected 'male' or 'female'", http.StatusBadRequest)
			return
		}
		gender = parsed
	}

	profile := fengshui.ProfileFor(year, gender)
	handlers.WriteJSON(w, r, http.StatusOK, adapters.MapKuaToApi(year, gender, profile))
}

func (h *Handler) GetTimeLords(w http.ResponseWriter, r *http.Request) {
	var req api.TimeLordsRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	birth, err := time.Parse(domain.DateLayout, req.BirthDate)
	if err != nil {
		http.Error(w, errBirthDate, http.StatusBadRequest)
		return
	}

	now := h.now()
	if req.Now != "" {
		now, err = time.Parse(domain.DateLayout, req.Now)
		if err != nil {
			http.Error(w, "invalid 'now' format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	age := timelords.Age(birth, now)
	handlers.WriteJSON(w, r, http.StatusOK, adapters.MapTimeLordsToApi(
		age,
		timelords.Decennial(age),
		timelords.Profect(age, req.Ascendant),
		timelords.Release(req.FortuneSign, age),
		timelords.ReleasingPeriods(req.FortuneSign),
	))
}

func (h *Handler) GetLots(w http.ResponseWriter, r *http.Request) {
	var req api.LotsRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	chart, err := adapters.MapChartApiToDomain(req.Chart)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	day := report.IsDayChart(chart)
	if req.IsDayChart != nil {
		day = *req.IsDayChart
	}

	computed := lots.ComputeAll(chart.Positions(), day)
	handlers.WriteJSON(w, r, http.StatusOK, adapters.MapLotsToApi(day, computed))
}

func (h *Handler) GetDignity(w http.ResponseWriter, r *http.Request) {
	planet := r.URL.Query().Get("planet")
	sign := r.URL.Query().Get("sign")
	if planet == "" || sign == "" {
		http.Error(w, "'planet' and 'sign' are required", http.StatusBadRequest)
		return
	}
	if canonical, ok := zodiac.ParseSign(sign); ok {
		sign = canonical
	}

	handlers.WriteJSON(w, r, http.StatusOK, api.Dignity{
		Planet:  planet,
		Sign:    sign,
		Dignity: string(dignity.Of(planet, sign)),
	})
}

func (h *Handler) GetNakshatras(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.BirthChart
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	chart, err := adapters.MapChartApiToDomain(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	nak := report.Nakshatras(chart, h.seed)
	resp := api.Nakshatras{
		Ascendant:  adapters.MapPlacementToApi("Ascendant", nak.Ascendant),
		Placements: make([]api.NakshatraPlacement, 0, len(nak.Planets)),
	}
	for _, pn := range nak.Planets {
		resp.Placements = append(resp.Placements, adapters.MapPlacementToApi(pn.Planet, pn.Placement))
	}

	if lord := report.MoonLord(chart); lord != "" {
		age := timelords.Age(chart.BirthDate, h.now())
		dasha := adapters.MapDashaToApi(vedic.Current(lord, age), vedic.Sequence(lord))
		resp.Dasha = &dasha
	} else {
		logger.Debug().Msg("chart has no Moon, skipping dasha")
	}

	handlers.WriteJSON(w, r, http.StatusOK, resp)
}
