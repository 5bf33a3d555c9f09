package controllers

import (
	"net/http"

	"github.com/victormanuel-98/VMRC-PI-BACK/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{contacts: contacts}
}

func (ctl *ContactController) Submit(c *gin.Context) {
	var in services.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	contact, err := ctl.contacts.Submit(in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "message sent, we will get back to you soon",
		"id":      contact.ID,
	})
}

func (ctl *ContactController) List(c *gin.Context) {
	filter := services.ListContactsFilter{
		Page:  intQuery(c, "page", 1),
		Limit: intQuery(c, "limit", 10),
	}
	if raw := c.Query("read"); raw != "" {
		read := raw == "true"
		filter.Read = &read
	}

	contacts, total, err := ctl.contacts.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	pages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		pages++
	}
	c.JSON(http.StatusOK, gin.H{
		"messages":    contacts,
		"page":        filter.Page,
		"total_pages": pages,
		"total":       total,
	})
}

func (ctl *ContactController) MarkRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	contact, err := ctl.contacts.MarkRead(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "message marked as read",
		"contact": contact,
	})
}

func (ctl *ContactController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.contacts.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
