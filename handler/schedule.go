package handler

import (
	"cinema_planner/constants"
	"cinema_planner/engine"
	"cinema_planner/helper"
	"cinema_planner/model"
	"cinema_planner/utils"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func GetSchedule(c *fiber.Ctx) error {
	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	s := helper.Session
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":    s.Date,
		"window":  s.Window,
		"shows":   s.Resolve(),
		"canUndo": len(s.Snap.Undo) > 0,
	})
}

func GetIssues(c *fiber.Ctx) error {
	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	s := helper.Session
	winStart, ok := engine.AtTime(s.DayStart(), s.Window.FirstHM)
	if !ok {
		winStart, _ = engine.AtTime(s.DayStart(), engine.DefaultWindow.FirstHM)
	}

	issues := engine.AnalyzeDowntime(s.Resolve(), winStart)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":   s.Date,
		"issues": issues,
	})
}

func SetStart(c *fiber.Ctx) error {
	input := c.Locals("setStartInput").(model.SetStartInput)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	show, changed := helper.Session.SetStart(input.ShowID, input.StartHM)
	if changed {
		saveSession()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"changed": changed,
		"show":    show,
	})
}

func SetAuditorium(c *fiber.Ctx) error {
	input := c.Locals("setAuditoriumInput").(model.SetAuditoriumInput)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	show, changed := helper.Session.SetAuditorium(input.ShowID, input.AudID)
	if changed {
		saveSession()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"changed": changed,
		"show":    show,
	})
}

func SetFilm(c *fiber.Ctx) error {
	input := c.Locals("setFilmInput").(model.SetFilmInput)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	show, changed := helper.Session.SetFilm(input.ShowID, input.FilmID)
	if changed {
		saveSession()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"changed": changed,
		"show":    show,
	})
}

func AddManualShow(c *fiber.Ctx) error {
	input := c.Locals("manualShowInput").(model.ManualShowInput)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	show, ok := helper.Session.AddManualShow(input.RowID, input.StartHM)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thêm được suất chiếu cho hàng này", errors.New("row incomplete or not found"))
	}
	saveSession()

	return utils.SuccessResponse(c, fiber.StatusCreated, show)
}

func Undo(c *fiber.Ctx) error {
	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	undone := helper.Session.Undo()
	if undone {
		saveSession()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"undone":  undone,
		"canUndo": len(helper.Session.Snap.Undo) > 0,
	})
}

func SwitchDate(c *fiber.Ctx) error {
	input := c.Locals("switchDateInput").(model.SwitchDateInput)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	if err := helper.Session.SwitchTo(context.Background(), input.Date); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	s := helper.Session
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":  s.Date,
		"shows": s.Resolve(),
	})
}

func CopySchedule(c *fiber.Ctx) error {
	input := c.Locals("copyScheduleInput").(model.CopyScheduleInput)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	if err := helper.Session.Copy(context.Background(), input.FromDate, input.ToDates); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"from": input.FromDate,
		"to":   input.ToDates,
	})
}

func ClearSchedule(c *fiber.Ctx) error {
	date := c.Locals("inputDate").(string)

	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	if err := helper.Session.Clear(context.Background(), date); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"cleared": date})
}

func ClearAllSchedules(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	if err := helper.Session.ClearAll(context.Background()); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"cleared": "all"})
}

func GetStoredDates(c *fiber.Ctx) error {
	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"current": helper.Session.Date,
		"dates":   helper.Session.StoredDates(context.Background()),
	})
}

func GetOperatingWindow(c *fiber.Ctx) error {
	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	return utils.SuccessResponse(c, fiber.StatusOK, helper.Session.Window)
}

func SetOperatingWindow(c *fiber.Ctx) error {
	input := c.Locals("operatingWindowInput").(model.OperatingWindowInput)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	w := engine.Window{FirstHM: input.FirstHM, LastHM: input.LastHM}
	if !helper.Session.SetWindow(context.Background(), w) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TIME, errors.New("invalid window"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.Session.Window)
}
