//go:build lambda
// +build lambda

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/config"
	"github.com/feeddigital/cursos-api/internal/helpers"
	"github.com/feeddigital/cursos-api/internal/logger"
	"github.com/feeddigital/cursos-api/internal/server"
)

// @title           Feed Digital Cursos API
// @version         1.0
// @description     Form submission endpoints for the Feed Digital course site.
// @BasePath        /

var ginLambda *ginadapter.GinLambda

func init() {
	// An invalid STAGE is reported by config.FromEnvironment below.
	stage, _ := helpers.ParseStage(os.Getenv("STAGE"))
	logger.InitLogger(stage)

	cfg, err := config.FromEnvironment(context.Background())
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	srv, err := server.Bootstrap(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	ginLambda = ginadapter.New(srv.Engine())
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
