package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agromon/pkg/field/service"
	"agromon/pkg/report"
)

type ReportCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) *ReportCtrl { return &ReportCtrl{svc} }

func (h *ReportCtrl) Report(c echo.Context) error {
	records := h.svc.Records()
	return c.JSON(http.StatusOK, map[string]any{
		"records":              records,
		"total_estimated_loss": report.Total(records),
		"text":                 report.Render(records),
	})
}

func (h *ReportCtrl) Xlsx(c echo.Context) error {
	f, err := report.BuildXLSX(h.svc.Records())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="relatorio_perdas.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
