package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"carelink-backend/controllers"
	timesheethandler "carelink-backend/lib/timesheet"
	"carelink-backend/middleware"
	apimodels "carelink-backend/models/api"
	timesheetapimodels "carelink-backend/models/api/timesheet"
)

type timesheetApiController struct {
	controllers.BaseAPIController
}

func InitTimesheetApiRouters(app *fiber.App) {
	controller := timesheetApiController{}
	app.Route("timesheets", func(router fiber.Router) {
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("clock_out", middleware.CaregiverRoleRequired(), controller.clockOut)
			idRoute.Put("approve", middleware.OperatorRoleRequired(), controller.approve)
		})
	})
}

// @Summary Clock out
// @Tags Timesheets
// @Description Submit the timesheet: end time, break and notes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 timesheetapimodels.ClockOutData	true	"request body"
// @Param   id          		path    string  				    	true         "timesheet ID"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id}/clock_out [put]
func (c *timesheetApiController) clockOut(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.ClockOutData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := timesheethandler.Instance.ClockOut(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to clock out")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Approve a timesheet
// @Tags Timesheets
// @Description Operator approval of a submitted timesheet
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "timesheet ID"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id}/approve [put]
func (c *timesheetApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := timesheethandler.Instance.Approve(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to approve timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
