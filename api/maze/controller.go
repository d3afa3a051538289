package mazeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-solver-api/api/identity"
	"github.com/beka-birhanu/maze-solver-api/search"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller manages maze storage, solving and rendering operations.
type Controller struct {
	mazeService  i.MazeManager
	solveService i.SolveManager
	scheduler    i.SolveScheduler
}

// NewController initializes a maze Controller.
func NewController(ms i.MazeManager, ss i.SolveManager, sch i.SolveScheduler) (*Controller, error) {
	return &Controller{
		mazeService:  ms,
		solveService: ss,
		scheduler:    sch,
	}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", c.createMaze)
		mazes.POST("/generate", c.generateMaze)
		mazes.GET("/", c.listMazes)
		mazes.GET("/:ID", c.getMaze)
		mazes.POST("/:ID/solve", c.solveMaze)
		mazes.GET("/:ID/render", c.renderMaze)
	}

	solves := route.Group("/solves")
	{
		solves.POST("/", c.scheduleSolve)
		solves.GET("/:ID", c.getSolution)
	}
}

// requesterID reads the authenticated user's ID from the claims the
// authorization middleware stored.
func (c *Controller) requesterID(ctx *gin.Context) (uuid.UUID, bool) {
	rawClaims, ok := ctx.Get(identity.ContextUserClaims)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	claims, ok := rawClaims.(map[string]interface{})
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	rawID, ok := claims["userID"].(string)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}

	return id, true
}

// mazeID parses the :ID path parameter.
func (c *Controller) mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// createMaze stores an uploaded maze layout.
func (c *Controller) createMaze(ctx *gin.Context) {
	userID, ok := c.requesterID(ctx)
	if !ok {
		return
	}

	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mz, err := c.mazeService.Create(userID, request.Name, request.Layout)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, NewMazeResponse(mz))
}

// generateMaze creates and stores a random maze.
func (c *Controller) generateMaze(ctx *gin.Context) {
	userID, ok := c.requesterID(ctx)
	if !ok {
		return
	}

	var request GenerateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mz, err := c.mazeService.Generate(userID, request.Name, request.Rows, request.Cols, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, NewMazeResponse(mz))
}

// listMazes returns every maze the requester stored.
func (c *Controller) listMazes(ctx *gin.Context) {
	userID, ok := c.requesterID(ctx)
	if !ok {
		return
	}

	mazes, err := c.mazeService.ByOwner(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]MazeResponse, 0, len(mazes))
	for _, mz := range mazes {
		response = append(response, NewMazeResponse(mz))
	}
	ctx.JSON(http.StatusOK, response)
}

// getMaze returns one stored maze.
func (c *Controller) getMaze(ctx *gin.Context) {
	if _, ok := c.requesterID(ctx); !ok {
		return
	}

	id, ok := c.mazeID(ctx)
	if !ok {
		return
	}

	mz, err := c.mazeService.ByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, NewMazeResponse(mz))
}

// solveMaze runs a search over a stored maze and returns the outcome.
func (c *Controller) solveMaze(ctx *gin.Context) {
	userID, ok := c.requesterID(ctx)
	if !ok {
		return
	}

	id, ok := c.mazeID(ctx)
	if !ok {
		return
	}

	var request SolveMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy, err := search.ParseStrategy(request.Strategy)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sol, err := c.solveService.Solve(ctx, uuid.New(), id, userID, strategy)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, NewSolutionResponse(sol))
}

// renderMaze returns the PNG view of a maze, optionally solved.
func (c *Controller) renderMaze(ctx *gin.Context) {
	userID, ok := c.requesterID(ctx)
	if !ok {
		return
	}

	id, ok := c.mazeID(ctx)
	if !ok {
		return
	}

	strategy := ctx.Query("solution")
	showExplored := ctx.Query("explored") == "true"

	png, err := c.solveService.RenderPNG(ctx, id, userID, strategy, showExplored)
	if err != nil {
		if errors.Is(err, search.ErrUnknownStrategy) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// scheduleSolve queues a background solve and returns its job ID.
func (c *Controller) scheduleSolve(ctx *gin.Context) {
	userID, ok := c.requesterID(ctx)
	if !ok {
		return
	}

	var request ScheduleSolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy, err := search.ParseStrategy(request.Strategy)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := c.mazeService.ByID(request.MazeID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	jobID, err := c.scheduler.Submit(context.Background(), request.MazeID, userID, strategy)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while scheduling solve"})
		return
	}

	ctx.JSON(http.StatusAccepted, JobResponse{JobID: jobID})
}

// getSolution returns a finished solve outcome.
func (c *Controller) getSolution(ctx *gin.Context) {
	if _, ok := c.requesterID(ctx); !ok {
		return
	}

	id, ok := c.mazeID(ctx)
	if !ok {
		return
	}

	sol, err := c.solveService.SolutionByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Solution"})
		return
	}

	ctx.JSON(http.StatusOK, NewSolutionResponse(sol))
}
