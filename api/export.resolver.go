package api

import (
	"bytes"

	"github.com/gin-gonic/gin"
)

const csvContentType = "text/csv; charset=utf-8"

func (m ApiHandler) exportAllocation(c *gin.Context) {
	result, ok := m.runPlan(c)
	if !ok {
		return
	}

	buf := &bytes.Buffer{}
	if err := m.ExportRepository.WriteAllocation(buf, result.Allocation); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="investment_ratios.csv"`)
	c.Data(200, csvContentType, buf.Bytes())
}

func (m ApiHandler) exportStatistics(c *gin.Context) {
	result, ok := m.runPlan(c)
	if !ok {
		return
	}

	buf := &bytes.Buffer{}
	if err := m.ExportRepository.WriteStatistics(buf, result.Statistics); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="instrument_statistics.csv"`)
	c.Data(200, csvContentType, buf.Bytes())
}
