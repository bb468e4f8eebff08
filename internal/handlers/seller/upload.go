package seller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopease_front_end/internal/handlers"
	"shopease_front_end/internal/shopease"
)

const maxImageSize = 10 << 20 // 10 Mo, même limite que le backend

// UploadImage relaie l'image du formulaire produit vers le backend et
// renvoie l'URL attribuée. Les contrôles sont faits ici pour épargner un
// aller-retour voué à l'échec.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier manquant"})
		return
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier trop volumineux (10 Mo max)"})
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seules les images sont acceptées"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier illisible"})
		return
	}
	defer f.Close()

	url, err := shopease.API.UploadFile(c.Request.Context(), c.GetString("token"), file.Filename, contentType, f)
	if err != nil {
		handlers.FailRequest(c, err, "Échec de l'envoi de l'image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
