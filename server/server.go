package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tauhid-476/anime-tw/internal/characters"
	"github.com/tauhid-476/anime-tw/internal/llm"
	"github.com/tauhid-476/anime-tw/internal/profile"
)

// ProfileSource resolves a handle to a profile record, cached or not.
type ProfileSource interface {
	Get(ctx context.Context, handle string) (*profile.Record, error)
}

// CharacterSearcher finds characters by free-text query.
type CharacterSearcher interface {
	Search(ctx context.Context, query string) ([]characters.Character, error)
}

type MessageRequest struct {
	UserData  *profile.Record `json:"userData"`
	Character string          `json:"character"`
}

type Server struct {
	echo     *echo.Echo
	profiles ProfileSource
	roaster  llm.Roaster
	search   CharacterSearcher
}

func NewServer(profiles ProfileSource, roaster llm.Roaster, search CharacterSearcher) *Server {
	e := echo.New()
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())

	s := &Server{
		echo:     e,
		profiles: profiles,
		roaster:  roaster,
		search:   search,
	}

	s.setupRoutes()
	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) setupRoutes() {
	s.echo.Static("/", "views")

	s.echo.GET("/profiles/:handle", s.getProfile)
	s.echo.POST("/messages", s.generateMessage)
	s.echo.GET("/characters", s.searchCharacters)
}

func (s *Server) getProfile(c echo.Context) error {
	handle := c.Param("handle")
	if handle == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing handle"})
	}

	rec, err := s.profiles.Get(c.Request().Context(), handle)
	if err != nil {
		var dataErr *profile.DataError
		switch {
		case errors.As(err, &dataErr):
			// The upstream answered but knows no such user. Not an HTTP
			// error: hand the upstream payload back as a result.
			return c.JSON(http.StatusOK, echo.Map{
				"error":   "user data not found",
				"details": dataErr.Details,
			})
		case errors.Is(err, profile.ErrMissingHandle):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing handle"})
		case errors.Is(err, profile.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired bearer token"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "an unexpected error occurred"})
		}
	}

	return c.JSON(http.StatusOK, rec)
}

func (s *Server) generateMessage(c echo.Context) error {
	req := new(MessageRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if req.UserData == nil || req.Character == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing userData or character"})
	}

	analysis, err := s.roaster.Roast(c.Request().Context(), llm.RoastRequest{
		Profile:   req.UserData,
		Character: req.Character,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"analysis": analysis})
}

func (s *Server) searchCharacters(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing query"})
	}

	results, err := s.search.Search(c.Request().Context(), query)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "character search unavailable"})
	}

	return c.JSON(http.StatusOK, results)
}
