package serve

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/bgraf/trackmap/interaction"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateSession opens an interaction session. The body may carry the initial viewport; the
// configured map view is used otherwise.
func (api *serveAPI) CreateSession(c *gin.Context) {
	vp := interaction.Viewport{
		Lat:  api.settings.Map.Center.Lat,
		Lon:  api.settings.Map.Center.Lon,
		Zoom: api.settings.Map.Zoom,
	}

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&vp); err != nil && err != io.EOF {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	guid, projection, err := api.sessions.Create(vp)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         guid,
		"eventsURL":  sessionsRoute + "/" + guid.String() + "/events",
		"projection": projection,
	})
}

func (api *serveAPI) ServeSession(c *gin.Context) {
	sess, ok := api.sessionFromParam(c)
	if !ok {
		return
	}

	state, projection := sess.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"mode":       state.Mode,
		"viewport":   state.Viewport,
		"projection": projection,
	})
}

// HandleEvent feeds one event to the session's controller and answers with the new projection. A
// stale event is answered with 409 and the current projection.
func (api *serveAPI) HandleEvent(c *gin.Context) {
	sess, ok := api.sessionFromParam(c)
	if !ok {
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := interaction.DecodeEvent(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order eventOrder
	if err := json.Unmarshal(payload, &order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projection, applied := sess.HandleSeq(order.Seq, event)
	if !applied {
		c.JSON(http.StatusConflict, projection)
		return
	}

	c.JSON(http.StatusOK, projection)
}

// eventOrder is the optional sequence number the page attaches to its events. Events arriving after
// a later one was applied are rejected.
type eventOrder struct {
	Seq uint64 `json:"seq"`
}

func (api *serveAPI) sessionFromParam(c *gin.Context) (*session, bool) {
	guid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return nil, false
	}

	sess, ok := api.sessions.Get(guid)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return nil, false
	}

	return sess, true
}
