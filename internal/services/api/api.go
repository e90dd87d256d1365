// Package api provides the HTTP API for the application
package api

import (
	"chalie/internal/platform/config"
	"chalie/internal/platform/logger"
	phttp "chalie/internal/platform/net/http"
	"chalie/internal/platform/store"

	"chalie/internal/modkit"
	"chalie/internal/modkit/httpkit"
	"chalie/internal/modkit/module"
	"chalie/internal/modkit/swaggerkit"

	apiboundary "chalie/internal/services/api/boundary/module"
	apifocus "chalie/internal/services/api/focus/module"
	apimessages "chalie/internal/services/api/messages/module"
	metamod "chalie/internal/services/api/meta/module"
	apitopics "chalie/internal/services/api/topics/module"

	bdom "chalie/internal/services/boundary/domain"
	boundarymod "chalie/internal/services/boundary/module"
	focusmod "chalie/internal/services/focus/module"
	messagesmod "chalie/internal/services/messages/module"
	topicsmod "chalie/internal/services/topics/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		KV:  opt.Store.KV,
	}

	// Worker modules first; API modules borrow their ports
	messages := messagesmod.New(deps)
	topics := topicsmod.New(deps)
	focus := focusmod.New(deps)

	msgPorts := module.MustPortsOf[messagesmod.Ports](messages)
	topicPorts := module.MustPortsOf[topicsmod.Ports](topics)
	focusPorts := module.MustPortsOf[focusmod.Ports](focus)

	boundary := boundarymod.New(deps, modkit.WithPorts(bdom.Ports{
		Messages: msgPorts.Writer,
		Topics:   topicPorts.Writer,
		Focus:    focusPorts.Modifier,
	}))
	boundaryPorts := module.MustPortsOf[boundarymod.Ports](boundary)

	mods := []module.Module{
		metamod.New(deps),
		messages,
		topics,
		focus,
		boundary,
		apiboundary.New(deps, modkit.WithPorts(apiboundary.Ports{
			Decider: boundaryPorts.Decider,
		})),
		apitopics.New(deps, modkit.WithPorts(apitopics.Ports{
			Reader: topicPorts.Reader,
		})),
		apimessages.New(deps, modkit.WithPorts(apimessages.Ports{
			Reader: msgPorts.Reader,
		})),
		apifocus.New(deps, modkit.WithPorts(apifocus.Ports{
			Session: focusPorts.Session,
		})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
