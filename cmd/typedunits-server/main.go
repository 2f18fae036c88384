// Command typedunits-server exposes the units engine over HTTP: POST
// /v1/parse, POST /v1/convert, GET /v1/units, POST /v1/units.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mhucka/typedunits/catalog"
	"github.com/mhucka/typedunits/unitarray"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestIDMiddleware())

	r.POST("/v1/parse", handleParse)
	r.POST("/v1/convert", handleConvert)
	r.GET("/v1/units", handleListUnits)
	r.POST("/v1/units", handleAddUnit)

	addr := ":8080"
	if v := os.Getenv("TYPEDUNITS_ADDR"); v != "" {
		addr = v
	}
	log.Printf("typedunits-server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

// requestIDMiddleware tags every request with a uuid.UUID, read from
// X-Request-Id when present, otherwise generated. Used only in logs, never
// in unit semantics.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-Id", id)
		c.Set("request_id", id)
		log.Printf("[%s] %s %s", id, c.Request.Method, c.Request.URL.Path)
		c.Next()
	}
}

type parseRequest struct {
	Formula string `json:"formula" binding:"required"`
}

type parseResponse struct {
	Value   string `json:"value"`
	Display string `json:"display"`
	Base    string `json:"base"`
}

func handleParse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := catalog.Parse(req.Formula)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, parseResponse{
		Value:   q.String(),
		Display: unitarray.Format(q.Display),
		Base:    unitarray.Format(q.Base),
	})
}

type convertRequest struct {
	Value float64 `json:"value" binding:"required"`
	From  string  `json:"from" binding:"required"`
	To    string  `json:"to" binding:"required"`
}

type convertResponse struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func handleConvert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := catalog.Default()
	source, err := db.NewQuantity(complex(req.Value, 0), req.From)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	target, err := db.NewQuantity(1, req.To)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := source.At(target)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, convertResponse{Value: real(result), Unit: req.To})
}

func handleListUnits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"units": catalog.Default().Names()})
}

type addUnitRequest struct {
	Name    string `json:"name" binding:"required"`
	Formula string `json:"formula" binding:"required"`
}

func handleAddUnit(c *gin.Context) {
	var req addUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := catalog.Default()
	if err := db.AddScaledUnit(req.Name, req.Formula, 1.0, 1, 1, 0); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"name": req.Name, "formula": req.Formula})
}
