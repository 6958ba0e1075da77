package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agromon/pkg/field/service"
)

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) *FieldCtrl { return &FieldCtrl{svc} }

type createReq struct {
	AreaHectares      float64 `json:"area_hectares"`
	ExpectedYieldTons float64 `json:"expected_yield_tons"`
	Cultivar          string  `json:"cultivar"`
	StressLevel       string  `json:"stress_level"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rec, err := h.svc.Register(service.RegisterInput{
		AreaHectares:      req.AreaHectares,
		ExpectedYieldTons: req.ExpectedYieldTons,
		Cultivar:          req.Cultivar,
		StressLevel:       req.StressLevel,
	})
	if err != nil {
		if rec.ID != 0 {
			// record was stored in memory but the log append failed
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error(), "record": rec})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *FieldCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Records())
}
