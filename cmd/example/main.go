// Command example wires the rhino dispatch core together with the
// session ext collaborator behind a single Mapper, demonstrating the
// request-dispatch pipeline end to end. ext/sqlstore and ext/templates
// are independent, optional context-property collaborators exercised by
// their own package tests rather than by this demo.
package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/arkd0ng/rhino"
	"github.com/arkd0ng/rhino/ext/session"
	"github.com/arkd0ng/rhino/logging"
)

type greeting struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// greetJSON implements rhino.Handler for GET /greet/{name}, producing
// application/json.
func greetJSON(req *rhino.Request, ctx *rhino.Context) (any, error) {
	name := req.RoutingArgs()["name"]
	if name == "" {
		name = "world"
	}

	sess, err := rhino.Prop[*session.Session](ctx, session.PropertyName)
	if err != nil {
		return nil, err
	}
	visits := "1"
	if v, ok := sess.Get("visits"); ok {
		visits = v
	}
	sess.Set("visits", visits)

	body, err := json.Marshal(greeting{Name: name, Message: "hello, " + name})
	if err != nil {
		return nil, rhino.InternalServerError("failed to encode response")
	}
	resp := rhino.OK(body)
	resp.Header.Set(rhino.HeaderContentType, rhino.ContentTypeJSON)
	return resp, nil
}

// greetText implements the same (view, verb) with a different accepted
// Accept value, exercising content negotiation (spec.md 4.5 steps 4-6).
func greetText(req *rhino.Request, ctx *rhino.Context) (any, error) {
	name := req.RoutingArgs()["name"]
	if name == "" {
		name = "world"
	}
	return rhino.OK("hello, " + name + "\n"), nil
}

func buildMapper(logger *logging.Logger) *rhino.Mapper {
	m := rhino.NewMapper(rhino.WithLogger(logger))

	greet := rhino.NewResource().
		Handle(rhino.Meta(http.MethodGet, "", greetJSON).WithProvides(rhino.ContentTypeJSON)).
		Handle(rhino.Meta(http.MethodGet, "", greetText).WithProvides(rhino.ContentTypeText))

	if _, err := m.Route("greet", "/greet[/{name}]", greet); err != nil {
		logger.Fatal("failed to register route", "error", err.Error())
	}

	if err := session.Install(m, session.NewMemStore(), 30*time.Minute); err != nil {
		logger.Fatal("failed to install session extension", "error", err.Error())
	}

	return m
}

func main() {
	logger, err := logging.New(logging.WithStdoutOnly(), logging.WithAppName("rhino-example"))
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	m := buildMapper(logger)
	logger.Info("starting rhino example server", "addr", ":8080", "version", rhino.Version)
	if err := http.ListenAndServe(":8080", m); err != nil {
		logger.Fatal("server exited", "error", err.Error())
	}
}
