package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"aarohan/logging"
	"aarohan/services"
	"aarohan/services/visitor"
	"aarohan/templates/pages"

	"github.com/labstack/echo/v4"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PendingCasesHandler lists the sample cases matching the status and complexity filters
func PendingCasesHandler(c echo.Context) error {
	filter := services.ParseCaseFilter(c.QueryParam("status"), c.QueryParam("complexity"))
	view := pages.CasesView{
		Filter: filter,
		Cases:  services.ListCases(filter),
	}
	return render(c, pages.Cases(pageFor(c, "cases"), view))
}

// ExportCasesHandler downloads the filtered list as an Excel workbook
func ExportCasesHandler(c echo.Context) error {
	filter := services.ParseCaseFilter(c.QueryParam("status"), c.QueryParam("complexity"))

	buf, err := services.ExportCasesXLSX(services.ListCases(filter))
	if err != nil {
		logging.L().Errorw("Failed to export cases", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export cases")
	}

	filename := fmt.Sprintf("aarohan-%s-matters.xlsx", filter.Status)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
}

// JoinHearingHandler hands the full case record to the courtroom and navigates there
func JoinHearingHandler(c echo.Context) error {
	v, err := requireVisitor(c)
	if err != nil {
		return err
	}

	record, err := services.JoinableCase(c.Param("id"))
	switch {
	case errors.Is(err, services.ErrCaseNotFound):
		return redirectWith(c, v, visitor.FlashError, "Case not found.", services.RouteCaseListing)
	case errors.Is(err, services.ErrCaseNotJoinable):
		return redirectWith(c, v, visitor.FlashError, "Hearings can only be joined for pending cases.", services.RouteCaseListing)
	case err != nil:
		return err
	}

	v.SetNavigationCase(record)
	return c.Redirect(http.StatusSeeOther, courtroomPath(record.ID))
}
