package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"carelink-backend/controllers"
	shifthandler "carelink-backend/lib/shift"
	timesheethandler "carelink-backend/lib/timesheet"
	"carelink-backend/middleware"
	apimodels "carelink-backend/models/api"
	shiftapimodels "carelink-backend/models/api/shift"
)

type shiftApiController struct {
	controllers.BaseAPIController
}

func InitShiftApiRouters(app *fiber.App) {
	controller := shiftApiController{}
	app.Route("shifts", func(router fiber.Router) {
		router.Use(middleware.CaregiverRoleRequired())
		router.Post("list", controller.listOpen)
		router.Post("my", controller.listMine)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("claim", controller.claim)
			idRoute.Put("clock_in", controller.clockIn)
		})
	})
}

// @Summary List open shifts
// @Tags Shifts
// @Description Open shifts starting from now, earliest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 shiftapimodels.ShiftFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/list [post]
func (c *shiftApiController) listOpen(ctx *fiber.Ctx) error {
	var filter shiftapimodels.ShiftFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	list, rowCount, err := shifthandler.Instance.ListOpen(userID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list open shifts")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary List my shifts
// @Tags Shifts
// @Description Caller's shifts in any status, latest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/my [post]
func (c *shiftApiController) listMine(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := c.BodyParser(ctx, &pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	list, rowCount, err := shifthandler.Instance.ListMine(userID, pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list caregiver shifts")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Claim a shift
// @Tags Shifts
// @Description Take sole ownership of an open shift
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "shift ID"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ClaimView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id}/claim [put]
func (c *shiftApiController) claim(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := shifthandler.Instance.Claim(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to claim shift")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Clock in
// @Tags Shifts
// @Description Start the timesheet for a claimed shift
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "shift ID"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id}/clock_in [put]
func (c *shiftApiController) clockIn(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := timesheethandler.Instance.ClockIn(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to clock in")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
