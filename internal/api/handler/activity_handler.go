package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sustainlite/sustainlite-api/internal/core/ports"
)

// ActivityHandler handles HTTP requests for the caller's activities.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Create handles POST /api/activities.
//
// @Summary      Log an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActivityRequest  true  "Activity"
// @Success      201   {object}  activityResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activity, err := h.service.Create(c.Request().Context(), user.ID, toCreateActivityInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toActivityResponse(activity))
}

// List handles GET /api/activities.
//
// @Summary      List activities, newest first
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Items to skip; negative values count as 0"  default(0)
// @Param        limit  query     int  false  "Maximum items; 0 or negative selects the default of 100, larger values are capped at LIST_MAX_LIMIT"  default(100)
// @Success      200    {array}   activityResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var in ports.ListActivitiesInput
	if err := echo.QueryParamsBinder(c).
		Int("skip", &in.Skip).
		Int("limit", &in.Limit).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "skip and limit must be integers")
	}

	items, err := h.service.List(c.Request().Context(), user.ID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActivityListResponse(items))
}

// Get handles GET /api/activities/:id.
//
// @Summary      Get one activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Activity id"
// @Success      200  {object}  activityResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := activityID(c)
	if err != nil {
		return err
	}

	activity, err := h.service.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActivityResponse(activity))
}

// Delete handles DELETE /api/activities/:id.
//
// @Summary      Delete one activity
// @Tags         activities
// @Security     BearerAuth
// @Param        id   path  int  true  "Activity id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/activities/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := activityID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func activityID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}
