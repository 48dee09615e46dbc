package serve

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (api *serveAPI) ServeIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "map.html", api.page)
}

// ServePhotoFeatures answers 503 when no valid feature collection could be built, so that the page
// never receives invalid geometry.
func (api *serveAPI) ServePhotoFeatures(c *gin.Context) {
	if api.trip.Photos == nil {
		c.String(http.StatusServiceUnavailable, api.trip.PhotosErr.Error())
		return
	}

	c.JSON(http.StatusOK, api.trip.Photos)
}

func (api *serveAPI) ServeRouteFeature(c *gin.Context) {
	c.JSON(http.StatusOK, api.trip.RouteFeature)
}

func (api *serveAPI) ServePhoto(c *gin.Context) {
	serveResource(c, api.photos)
}

func (api *serveAPI) ServeThumb(c *gin.Context) {
	serveResource(c, api.thumbs)
}

func serveResource(c *gin.Context, resources *resourceMap) {
	resourcePath, ok := resources.PathFromName(c.Param("name"))
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.File(resourcePath)
}
