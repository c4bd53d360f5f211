package server

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"nwalign/internal/domain"
	"nwalign/internal/fingerprint"
	"nwalign/internal/observability"
	"nwalign/internal/services/alignment"
)

// DigestHeader carries the fingerprint of an alignment response body.
const DigestHeader = "X-Alignment-Digest"

// AlignRequest is the body of POST /align. Pointers distinguish a missing
// field from an empty sequence.
type AlignRequest struct {
	Seq1 *string `json:"seq1" binding:"required"`
	Seq2 *string `json:"seq2" binding:"required"`
}

// HandleAlign decodes both texts into sequences and answers with the record.
func HandleAlign(svc *alignment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "read body: " + err.Error()})
			return
		}
		// Checked before decoding: encoding/json maps invalid bytes to U+FFFD.
		if !utf8.Valid(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: not valid UTF-8"})
			return
		}
		var req AlignRequest
		if err := binding.JSON.BindBody(raw, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		rec := svc.Align(observability.SourceHTTP, domain.FromString(*req.Seq1), domain.FromString(*req.Seq2))
		body, err := json.Marshal(rec)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header(DigestHeader, fingerprint.Bytes(body))
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}

// HealthCheck answers {"status": "ok"}.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
