package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/roverlab/waypointx/pkg/http/router/routerhelper"
	"github.com/roverlab/waypointx/pkg/planner"
	"go.uber.org/zap"
)

type plannerAPI struct {
	plannerService PlannerService
	log            *zap.Logger
}

func New(plannerService PlannerService, log *zap.Logger) *plannerAPI {
	return &plannerAPI{
		plannerService: plannerService,
		log:            log,
	}

}

func (api *plannerAPI) Routes(group *helper.RouteGroup) {
	group.POST("/planner/plan", api.plan)
}

func (api *plannerAPI) plan(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request planRequest
		err     error
	)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()

	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	waypoints := make([]planner.Waypoint, len(request.Waypoints))
	penalties := make([]float64, len(request.Waypoints))
	for i, waypoint := range request.Waypoints {
		waypoints[i] = planner.NewWaypoint(waypoint.X, waypoint.Y)
		penalties[i] = waypoint.Penalty
	}

	minCost, visitOrder, path, err := api.plannerService.PlanCourse(
		planner.NewWaypoint(request.Start.X, request.Start.Y),
		planner.NewWaypoint(request.Goal.X, request.Goal.Y),
		request.Velocity, request.DwellTime, waypoints, penalties)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewPlanResponse(minCost, visitOrder,
		path)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
