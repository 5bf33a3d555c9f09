package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/victormanuel-98/VMRC-PI-BACK/middlewares"
	"github.com/victormanuel-98/VMRC-PI-BACK/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	histories *services.HistoryService
}

func NewHistoryController(histories *services.HistoryService) *HistoryController {
	return &HistoryController{histories: histories}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type upsertHistoryInput struct {
	Date  string                      `json:"date"`
	Items []services.HistoryItemInput `json:"items"`
}

func (ctl *HistoryController) Upsert(c *gin.Context) {
	var in upsertHistoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if in.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and items are required"})
		return
	}
	date, ok := parseDate(in.Date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	history, err := ctl.histories.UpsertDay(middlewares.CallerID(c), date, in.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "history updated",
		"history": history,
	})
}

func (ctl *HistoryController) GetByDate(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	date, ok := parseDate(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	history, err := ctl.histories.GetByDate(middlewares.CallerID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (ctl *HistoryController) GetRange(c *gin.Context) {
	rawStart, rawEnd := c.Query("start"), c.Query("end")
	if rawStart == "" || rawEnd == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end dates are required"})
		return
	}
	start, okStart := parseDate(rawStart)
	end, okEnd := parseDate(rawEnd)
	if !okStart || !okEnd {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	histories, err := ctl.histories.GetRange(middlewares.CallerID(c), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, histories)
}

func (ctl *HistoryController) RemoveItem(c *gin.Context) {
	historyID, ok := idParam(c, "historyId")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}

	history, err := ctl.histories.RemoveItem(middlewares.CallerID(c), historyID, index)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "item removed from history",
		"history": history,
	})
}
