// waitinglist.go
//
// Shelter waiting list data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of waitinglist.
// waitinglist is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// waitinglist is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with waitinglist.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/waitinglist/internal/services"
	"github.com/localnerve/waitinglist/internal/types"
	"github.com/localnerve/waitinglist/internal/utils"
)

// WaitingListHandler handles waiting list routes
type WaitingListHandler struct {
	Service *services.WaitingList
}

// RemoveRequest takes one or many entries off the list
type RemoveRequest struct {
	IDs types.FlexList[types.FlexUint64] `json:"ids"`
}

// HighlightRequest toggles an entry highlight
type HighlightRequest struct {
	Color int `json:"color"`
}

// HighlightResponse reports the highlight state after a toggle
type HighlightResponse struct {
	ID          uint64 `json:"id"`
	Highlighted bool   `json:"highlighted"`
}

// AnimalResponse reports the animal created from an entry
type AnimalResponse struct {
	ID       uint64 `json:"id"`
	AnimalID uint64 `json:"animalId"`
}

// Register mounts the routes. Mutations run behind auth, permanent deletion behind admin.
func (h *WaitingListHandler) Register(router fiber.Router, auth, admin fiber.Handler) {
	router.Get("/", h.List)
	router.Get("/search", h.Search)
	router.Get("/:id", h.Get)
	router.Get("/:id/satellites", h.Satellites)

	router.Post("/", auth, h.Create)
	router.Post("/remove", auth, h.Remove)
	router.Put("/:id", auth, h.Update)
	router.Delete("/:id", admin, h.Delete)
	router.Post("/:id/highlight", auth, h.ToggleHighlight)
	router.Post("/:id/animal", auth, h.CreateAnimal)
}

// List handles GET /api/waitinglist
// @Summary List the waiting list
// @Description Active entries by urgency then date put on list, with rank, highlight and time on list
// @Tags WaitingList
// @Produce json
// @Param priorityfloor query int false "Lowest urgency to include (1-5)" default(5)
// @Param species query int false "Species id, -1 for all" default(-1)
// @Param size query int false "Size id, -1 for all" default(-1)
// @Param addresscontains query string false "Contact address substring"
// @Param namecontains query string false "Contact name substring"
// @Param descriptioncontains query string false "Animal description substring"
// @Param includeremoved query bool false "Include removed entries"
// @Param siteid query int false "Site id, 0 for all"
// @Success 200 {array} services.WaitingListRow
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /waitinglist [get]
func (h *WaitingListHandler) List(c *fiber.Ctx) error {
	filter := services.DefaultListFilter()
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "validation")
	}

	rows, err := h.Service.List(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err, "listWaitingList")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// Search handles GET /api/waitinglist/search
// @Summary Search the waiting list
// @Description Matches id, contact name, searchable additional fields and free text
// @Tags WaitingList
// @Produce json
// @Param q query string false "Search text"
// @Param limit query int false "Maximum rows, 0 for all"
// @Param siteid query int false "Site id, 0 for all"
// @Success 200 {array} services.WaitingListRow
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /waitinglist/search [get]
func (h *WaitingListHandler) Search(c *fiber.Ctx) error {
	rows, err := h.Service.SimpleSearch(c.UserContext(),
		c.Query("q"),
		c.QueryInt("limit", 0),
		uint64(max(c.QueryInt("siteid", 0), 0)))
	if err != nil {
		return handleError(c, err, "searchWaitingList")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// Get handles GET /api/waitinglist/:id
// @Summary Get a waiting list entry
// @Tags WaitingList
// @Produce json
// @Param id path int true "Entry id"
// @Success 200 {object} services.WaitingListRow
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /waitinglist/{id} [get]
func (h *WaitingListHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return handleError(c, err, "getWaitingList")
	}
	row, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "getWaitingList")
	}
	return c.Status(fiber.StatusOK).JSON(row)
}

// Satellites handles GET /api/waitinglist/:id/satellites
// @Summary Count media, diary and log rows of an entry
// @Tags WaitingList
// @Produce json
// @Param id path int true "Entry id"
// @Success 200 {object} services.SatelliteCounts
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /waitinglist/{id}/satellites [get]
func (h *WaitingListHandler) Satellites(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return handleError(c, err, "waitingListSatellites")
	}
	counts, err := h.Service.SatelliteCounts(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "waitingListSatellites")
	}
	return c.Status(fiber.StatusOK).JSON(counts)
}

// Create handles POST /api/waitinglist
// @Summary Add an entry to the waiting list
// @Tags WaitingList
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param body body services.CreateRequest true "Entry"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /waitinglist [post]
func (h *WaitingListHandler) Create(c *fiber.Ctx) error {
	var req services.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	id, err := h.Service.Create(c.UserContext(), req, actor(c))
	if err != nil {
		return handleError(c, err, "createWaitingList")
	}
	return utils.MutationSuccessResponse(c, id, 0, 1)
}

// Update handles PUT /api/waitinglist/:id
// @Summary Update a waiting list entry
// @Description recordversion must be the version last read, otherwise 409 with versionError
// @Tags WaitingList
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path int true "Entry id"
// @Param body body services.UpdateRequest true "Entry"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /waitinglist/{id} [put]
func (h *WaitingListHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return handleError(c, err, "updateWaitingList")
	}
	var req services.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	req.ID = id

	version, err := h.Service.Update(c.UserContext(), req, actor(c))
	if err != nil {
		return handleError(c, err, "updateWaitingList")
	}
	return utils.MutationSuccessResponse(c, id, version, 1)
}

// Remove handles POST /api/waitinglist/remove
// @Summary Remove entries from the waiting list as of today
// @Tags WaitingList
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param body body RemoveRequest true "One id or a list of ids"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /waitinglist/remove [post]
func (h *WaitingListHandler) Remove(c *fiber.Ctx) error {
	var req RemoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if len(req.IDs) == 0 {
		return handleError(c, &types.ValidationError{Field: "ids", Message: "ids are required"}, "removeWaitingList")
	}

	ids := make([]uint64, 0, len(req.IDs))
	for _, id := range req.IDs.Slice() {
		ids = append(ids, id.Uint64())
	}
	if err := h.Service.Remove(c.UserContext(), actor(c), ids...); err != nil {
		return handleError(c, err, "removeWaitingList")
	}
	return utils.MutationSuccessResponse(c, ids[0], 0, int64(len(ids)))
}

// Delete handles DELETE /api/waitinglist/:id
// @Summary Delete an entry with its media, diary, logs and files
// @Tags WaitingList
// @Produce json
// @Security CookieAuth
// @Param id path int true "Entry id"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /waitinglist/{id} [delete]
func (h *WaitingListHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return handleError(c, err, "deleteWaitingList")
	}
	if err := h.Service.Delete(c.UserContext(), id, actor(c)); err != nil {
		return handleError(c, err, "deleteWaitingList")
	}
	return utils.MutationSuccessResponse(c, id, 0, 1)
}

// ToggleHighlight handles POST /api/waitinglist/:id/highlight
// @Summary Toggle the highlight of an entry
// @Tags WaitingList
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path int true "Entry id"
// @Param body body HighlightRequest true "Colour 1-5"
// @Success 200 {object} HighlightResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /waitinglist/{id}/highlight [post]
func (h *WaitingListHandler) ToggleHighlight(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return handleError(c, err, "toggleHighlight")
	}
	req := HighlightRequest{Color: 1}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c, err)
		}
	}

	on, err := h.Service.ToggleHighlight(c.UserContext(), id, req.Color)
	if err != nil {
		return handleError(c, err, "toggleHighlight")
	}
	return c.Status(fiber.StatusOK).JSON(HighlightResponse{ID: id, Highlighted: on})
}

// CreateAnimal handles POST /api/waitinglist/:id/animal
// @Summary Create an animal record from an entry
// @Description Removes the entry from the list and copies its media and logs to the animal
// @Tags WaitingList
// @Produce json
// @Security CookieAuth
// @Param id path int true "Entry id"
// @Success 200 {object} AnimalResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /waitinglist/{id}/animal [post]
func (h *WaitingListHandler) CreateAnimal(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return handleError(c, err, "createAnimal")
	}
	animalID, err := h.Service.CreateAnimal(c.UserContext(), id, actor(c))
	if err != nil {
		return handleError(c, err, "createAnimal")
	}
	return c.Status(fiber.StatusOK).JSON(AnimalResponse{ID: id, AnimalID: animalID})
}
