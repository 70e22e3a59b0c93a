package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleJobs(c *gin.Context) {
	query := parseQuery(c.Request.URL.Query())

	page, err := s.searcher.Search(c.Request.Context(), query)
	if err != nil {
		s.logger.Error().Err(err).Msg("job aggregation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
