package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) renderChart(c *gin.Context) {
	name := c.Param("name")

	var (
		png []byte
		err error
	)
	switch name {
	case "prices.png":
		dataset, loadErr := m.DatasetService.Load(requestContext(c))
		if loadErr != nil {
			returnErrorJson(loadErr, c)
			return
		}
		png, err = m.ChartRepository.PriceTrends(*dataset)
	case "selection.png":
		result, ok := m.runPlan(c)
		if !ok {
			return
		}
		png, err = m.ChartRepository.SelectionComparison(result.Selection)
	case "projection.png":
		result, ok := m.runPlan(c)
		if !ok {
			return
		}
		if result.Projection == nil {
			returnErrorJsonCode(fmt.Errorf("%s", *result.ProjectionError), c, http.StatusUnprocessableEntity)
			return
		}
		png, err = m.ChartRepository.Projection(*result.Projection)
	default:
		returnErrorJsonCode(fmt.Errorf("unknown chart %q", name), c, http.StatusNotFound)
		return
	}
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnprocessableEntity)
		return
	}

	c.Data(200, "image/png", png)
}
