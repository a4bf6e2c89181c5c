// common.go
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
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/waitinglist/internal/middleware"
	"github.com/localnerve/waitinglist/internal/services"
	"github.com/localnerve/waitinglist/internal/types"
	"github.com/localnerve/waitinglist/internal/utils"
)

// actor is the authenticated name stamped on changes made by this request
func actor(c *fiber.Ctx) string {
	if name, ok := c.Locals(middleware.ActorKey).(string); ok && name != "" {
		return name
	}
	return services.SystemActor
}

// idParam reads the :id route parameter
func idParam(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, &types.ValidationError{Field: "id", Message: fmt.Sprintf("invalid id %q", c.Params("id"))}
	}
	return id, nil
}

// handleError maps service errors onto the response envelope
func handleError(c *fiber.Ctx, err error, errorType string) error {
	var (
		verr     *types.ValidationError
		conflict *types.ConflictError
		notFound *types.NotFoundError
		custom   *types.CustomError
	)
	switch {
	case errors.As(err, &verr):
		return utils.ErrorResponse(c, verr.Message, fiber.StatusBadRequest, "validation")
	case errors.As(err, &conflict):
		return utils.VersionErrorResponse(c, conflict.Message)
	case errors.As(err, &notFound):
		return utils.NotFoundResponse(c, notFound.Error())
	case errors.As(err, &custom):
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}

// badBody reports a request body that could not be parsed
func badBody(c *fiber.Ctx, err error) error {
	return utils.ErrorResponse(c, fmt.Sprintf("invalid request body: %v", err), fiber.StatusBadRequest, "validation")
}
