package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/hexlogo"
	"github.com/gogpu/hexlogo/internal/cache"
	"github.com/gogpu/hexlogo/palette"
	"github.com/gogpu/hexlogo/render/raster"
	"github.com/gogpu/hexlogo/render/svg"
)

// logoQuery holds the rendering parameters accepted by /svg and /png.
type logoQuery struct {
	Theme      string  `form:"theme,default=mesos"`
	Shapes     int     `form:"shapes,default=3"`
	GridSize   int     `form:"grid_size,default=2"`
	Opacity    float64 `form:"opacity,default=0.8"`
	Overlap    bool    `form:"overlap,default=true"`
	Width      int     `form:"width,default=512"`
	Height     int     `form:"height,default=512"`
	Background string  `form:"background"`
}

// generateRequest is the body of POST /generate. Seed may be a number, a
// numeric string, a UUID string, empty or absent.
type generateRequest struct {
	Theme    string          `json:"theme"`
	Shapes   *int            `json:"shapes"`
	GridSize *int            `json:"grid_size"`
	Opacity  *float64        `json:"opacity"`
	Overlap  *bool           `json:"overlap"`
	Seed     json.RawMessage `json:"seed"`
}

type generateResponse struct {
	Seed uint64 `json:"seed"`
	SVG  string `json:"svg"`
	PNG  string `json:"png"`
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Seed":   rand.Uint64(),
		"Themes": palette.ThemeNames(),
	})
}

func (s *Server) themes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes":  palette.ThemeNames(),
		"default": palette.Mesos.String(),
	})
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.cache.Stats())
}

func (s *Server) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	seed, ok := seedFromJSON(req.Seed)
	if !ok {
		seed = rand.Uint64()
	}

	q := url.Values{}
	if req.Theme != "" {
		q.Set("theme", palette.ThemeFor(req.Theme).String())
	}
	if req.Shapes != nil {
		q.Set("shapes", strconv.Itoa(*req.Shapes))
	}
	if req.GridSize != nil {
		q.Set("grid_size", strconv.Itoa(*req.GridSize))
	}
	if req.Opacity != nil {
		q.Set("opacity", strconv.FormatFloat(*req.Opacity, 'g', -1, 64))
	}
	if req.Overlap != nil {
		q.Set("overlap", strconv.FormatBool(*req.Overlap))
	}
	suffix := ""
	if len(q) > 0 {
		suffix = "?" + q.Encode()
	}
	c.JSON(http.StatusOK, generateResponse{
		Seed: seed,
		SVG:  fmt.Sprintf("/svg/%d%s", seed, suffix),
		PNG:  fmt.Sprintf("/png/%d%s", seed, suffix),
	})
}

// seedFromJSON accepts a JSON number or string. Anything else, including an
// empty string, yields no seed.
func seedFromJSON(raw json.RawMessage) (uint64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		str = string(raw)
	}
	seed, err := parseSeed(str)
	return seed, err == nil
}

// parseSeed reads a decimal seed or derives one from a UUID.
func parseSeed(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}
	return hexlogo.SeedFromUUID(s)
}

func (s *Server) serveSVG(c *gin.Context) {
	s.render(c, "svg", "image/svg+xml", func(logo *hexlogo.Logo, q logoQuery) ([]byte, error) {
		return svg.Render(logo, svg.Options{Width: q.Width, Height: q.Height, Background: q.Background})
	})
}

func (s *Server) servePNG(c *gin.Context) {
	s.render(c, "png", "image/png", func(logo *hexlogo.Logo, q logoQuery) ([]byte, error) {
		var buf bytes.Buffer
		err := raster.EncodePNG(&buf, logo, raster.Options{Width: q.Width, Height: q.Height, Background: q.Background})
		return buf.Bytes(), err
	})
}

type encodeFunc func(*hexlogo.Logo, logoQuery) ([]byte, error)

// render validates the request, then serves the body from the cache or
// generates and encodes it.
func (s *Server) render(c *gin.Context, format, contentType string, encode encodeFunc) {
	seed, err := parseSeed(c.Param("seed"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seed: " + c.Param("seed")})
		return
	}
	var q logoQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Width <= 0 || q.Height <= 0 || q.Width > s.maxDim || q.Height > s.maxDim {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("size must be within 1..%d", s.maxDim)})
		return
	}
	if _, err := raster.ParseColor(q.Background); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen := hexlogo.New(
		hexlogo.WithSeed(seed),
		hexlogo.WithThemeName(q.Theme),
		hexlogo.WithShapes(q.Shapes),
		hexlogo.WithDensity(q.GridSize),
		hexlogo.WithOpacity(q.Opacity),
		hexlogo.WithOverlap(q.Overlap),
	)
	key := cacheKey(format, gen.Config(), q)

	entry, hit, err := s.cache.GetOrCreate(key, func() (cache.Entry, error) {
		body, err := encode(gen.Generate(), q)
		return cache.Entry{ContentType: contentType, Body: body}, err
	})
	if err != nil {
		s.log.Error("server: render failed", "key", key, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Data(http.StatusOK, entry.ContentType, entry.Body)
}

// cacheKey builds the canonical key from normalized parameters, so requests
// that clamp to the same configuration share one entry.
func cacheKey(format string, cfg hexlogo.Config, q logoQuery) string {
	return fmt.Sprintf("%s|%d|%s|%d|%d|%s|%t|%dx%d|%s",
		format, *cfg.Seed, cfg.Theme, cfg.Shapes, cfg.Density,
		strconv.FormatFloat(cfg.Opacity, 'g', -1, 64), cfg.Overlap,
		q.Width, q.Height, strings.ToLower(strings.TrimSpace(q.Background)))
}
