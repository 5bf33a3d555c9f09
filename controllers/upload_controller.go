package controllers

import (
	"net/http"
	"strings"

	"github.com/victormanuel-98/VMRC-PI-BACK/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	uploader *utils.Uploader
}

func NewUploadController(uploader *utils.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

type uploadInput struct {
	Image string `json:"image"`
}

func (ctl *UploadController) upload(c *gin.Context, folder string) {
	var in uploadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if in.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image provided"})
		return
	}
	if !strings.HasPrefix(in.Image, "data:image") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image"})
		return
	}

	url, key, err := ctl.uploader.UploadBase64Image(c.Request.Context(), in.Image, folder)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "image uploaded",
		"url":     url,
		"key":     key,
	})
}

func (ctl *UploadController) RecipeImage(c *gin.Context) {
	ctl.upload(c, "fitfood/recipes")
}

func (ctl *UploadController) ProfileImage(c *gin.Context) {
	ctl.upload(c, "fitfood/profiles")
}
