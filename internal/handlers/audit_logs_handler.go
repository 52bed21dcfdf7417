package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/food-ordering/internal/audit"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/httpresp"
)

const auditDateLayout = "2006-01-02"

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List accepts action, entity, actor_type, from/to (YYYY-MM-DD, to inclusive),
// page and limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		Action:    c.Query("action"),
		Entity:    c.Query("entity"),
		ActorType: c.Query("actor_type"),
	}
	q.Page, _ = strconv.Atoi(c.Query("page"))
	q.Limit, _ = strconv.Atoi(c.Query("limit"))

	if v := c.Query("from"); v != "" {
		from, err := time.Parse(auditDateLayout, v)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD")
			return
		}
		q.From = from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(auditDateLayout, v)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD")
			return
		}
		q.To = to.AddDate(0, 0, 1)
	}

	page, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, page)
}
