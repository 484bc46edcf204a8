package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/auth/register)
	Register(w http.ResponseWriter, r *http.Request)
	// (POST /api/auth/login)
	Login(w http.ResponseWriter, r *http.Request)
	// (POST /api/auth/logout)
	Logout(w http.ResponseWriter, r *http.Request)
	// (GET /api/auth/me)
	GetMe(w http.ResponseWriter, r *http.Request)
	// (POST /api/auth/refresh)
	RefreshToken(w http.ResponseWriter, r *http.Request)

	// (GET /api/sessions)
	ListSessions(w http.ResponseWriter, r *http.Request)
	// (POST /api/sessions)
	CreateSession(w http.ResponseWriter, r *http.Request)
	// (GET /api/sessions/{id})
	GetSession(w http.ResponseWriter, r *http.Request, id string)
	// (DELETE /api/sessions/{id})
	DeleteSession(w http.ResponseWriter, r *http.Request, id string)
	// (POST /api/sessions/{id}/verify)
	VerifySessionCode(w http.ResponseWriter, r *http.Request, id string)
	// (GET /api/sessions/{id}/status)
	PollSessionStatus(w http.ResponseWriter, r *http.Request, id string)
	// (GET /api/sessions/{id}/watch)
	GetSessionWatch(w http.ResponseWriter, r *http.Request, id string)
	// (POST /api/sessions/{id}/watch)
	StartSessionWatch(w http.ResponseWriter, r *http.Request, id string)
	// (DELETE /api/sessions/{id}/watch)
	CancelSessionWatch(w http.ResponseWriter, r *http.Request, id string)

	// (GET /api/sessions/{id}/webhook)
	GetWebhook(w http.ResponseWriter, r *http.Request, id string)
	// (POST /api/sessions/{id}/webhook)
	CreateWebhook(w http.ResponseWriter, r *http.Request, id string, params CreateWebhookParams)
	// (DELETE /api/sessions/{id}/webhook)
	DeleteWebhook(w http.ResponseWriter, r *http.Request, id string)
	// (POST /api/sessions/{id}/webhook/start)
	StartWebhook(w http.ResponseWriter, r *http.Request, id string)
	// (POST /api/sessions/{id}/webhook/stop)
	StopWebhook(w http.ResponseWriter, r *http.Request, id string)
	// (GET /api/pool/status)
	GetPoolStatus(w http.ResponseWriter, r *http.Request)

	// (GET /api/sessions/{id}/chats)
	ListChats(w http.ResponseWriter, r *http.Request, id string, params ListChatsParams)
	// (GET /api/sessions/{id}/chats/{chatID})
	GetChat(w http.ResponseWriter, r *http.Request, id string, chatID int64)
	// (GET /api/sessions/{id}/chats/{chatID}/history)
	GetChatHistory(w http.ResponseWriter, r *http.Request, id string, chatID int64, params GetChatHistoryParams)
	// (GET /api/sessions/{id}/chats/{chatID}/history/watch)
	WatchChatHistory(w http.ResponseWriter, r *http.Request, id string, chatID int64, params WatchChatHistoryParams)
	// (GET /api/sessions/{id}/contacts)
	ListContacts(w http.ResponseWriter, r *http.Request, id string, params ListContactsParams)

	// (POST /api/sessions/{id}/messages/text)
	SendText(w http.ResponseWriter, r *http.Request, id string)
	// (POST /api/sessions/{id}/messages/bulk)
	SendBulk(w http.ResponseWriter, r *http.Request, id string)
	// (POST /api/sessions/{id}/messages/{kind})
	SendMedia(w http.ResponseWriter, r *http.Request, id string, kind string)
	// (GET /api/messages/{jobID}/status)
	GetJobStatus(w http.ResponseWriter, r *http.Request, jobID string, params GetJobStatusParams)

	// (GET /api/events)
	ListEvents(w http.ResponseWriter, r *http.Request, params ListEventsParams)
	// (POST /hooks/telegram)
	ReceiveEvent(w http.ResponseWriter, r *http.Request)

	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// InvalidParamFormatError is reported when a path or query parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, h http.HandlerFunc) {
	var handler http.Handler = h
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) fail(w http.ResponseWriter, r *http.Request, name string, err error) {
	siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
}

func (siw *ServerInterfaceWrapper) pathString(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.fail(w, r, name, err)
		return "", false
	}
	return v, true
}

func (siw *ServerInterfaceWrapper) pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	var v int64
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.fail(w, r, name, err)
		return 0, false
	}
	return v, true
}

// query binds one optional form-style query parameter.
func (siw *ServerInterfaceWrapper) query(w http.ResponseWriter, r *http.Request, name string, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		siw.fail(w, r, name, err)
		return false
	}
	return true
}

func (siw *ServerInterfaceWrapper) Register(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.Register)
}

func (siw *ServerInterfaceWrapper) Login(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.Login)
}

func (siw *ServerInterfaceWrapper) Logout(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.Logout)
}

func (siw *ServerInterfaceWrapper) GetMe(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.GetMe)
}

func (siw *ServerInterfaceWrapper) RefreshToken(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.RefreshToken)
}

func (siw *ServerInterfaceWrapper) ListSessions(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.ListSessions)
}

func (siw *ServerInterfaceWrapper) CreateSession(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.CreateSession)
}

// withID binds {id} and hands it to fn.
func (siw *ServerInterfaceWrapper) withID(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := siw.pathString(w, r, "id")
		if !ok {
			return
		}
		siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
			fn(w, r, id)
		})
	}
}

func (siw *ServerInterfaceWrapper) CreateWebhook(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathString(w, r, "id")
	if !ok {
		return
	}
	var params CreateWebhookParams
	if !siw.query(w, r, "auto_start", &params.AutoStart) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateWebhook(w, r, id, params)
	})
}

func (siw *ServerInterfaceWrapper) GetPoolStatus(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.GetPoolStatus)
}

func (siw *ServerInterfaceWrapper) ListChats(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathString(w, r, "id")
	if !ok {
		return
	}
	var params ListChatsParams
	if !siw.query(w, r, "limit", &params.Limit) ||
		!siw.query(w, r, "offset", &params.Offset) ||
		!siw.query(w, r, "archived", &params.Archived) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListChats(w, r, id, params)
	})
}

func (siw *ServerInterfaceWrapper) GetChat(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathString(w, r, "id")
	if !ok {
		return
	}
	chatID, ok := siw.pathInt64(w, r, "chatID")
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetChat(w, r, id, chatID)
	})
}

func (siw *ServerInterfaceWrapper) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathString(w, r, "id")
	if !ok {
		return
	}
	chatID, ok := siw.pathInt64(w, r, "chatID")
	if !ok {
		return
	}
	var params GetChatHistoryParams
	if !siw.query(w, r, "limit", &params.Limit) ||
		!siw.query(w, r, "offset_id", &params.OffsetId) ||
		!siw.query(w, r, "offset_date", &params.OffsetDate) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetChatHistory(w, r, id, chatID, params)
	})
}

func (siw *ServerInterfaceWrapper) WatchChatHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathString(w, r, "id")
	if !ok {
		return
	}
	chatID, ok := siw.pathInt64(w, r, "chatID")
	if !ok {
		return
	}
	var params WatchChatHistoryParams
	if !siw.query(w, r, "after_id", &params.AfterId) ||
		!siw.query(w, r, "wait_ms", &params.WaitMs) ||
		!siw.query(w, r, "limit", &params.Limit) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.WatchChatHistory(w, r, id, chatID, params)
	})
}

func (siw *ServerInterfaceWrapper) ListContacts(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathString(w, r, "id")
	if !ok {
		return
	}
	var params ListContactsParams
	if !siw.query(w, r, "limit", &params.Limit) ||
		!siw.query(w, r, "offset", &params.Offset) ||
		!siw.query(w, r, "search", &params.Search) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListContacts(w, r, id, params)
	})
}

func (siw *ServerInterfaceWrapper) SendMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.pathString(w, r, "id")
	if !ok {
		return
	}
	kind, ok := siw.pathString(w, r, "kind")
	if !ok {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SendMedia(w, r, id, kind)
	})
}

func (siw *ServerInterfaceWrapper) GetJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID, ok := siw.pathString(w, r, "jobID")
	if !ok {
		return
	}
	var params GetJobStatusParams
	if !siw.query(w, r, "wait", &params.Wait) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetJobStatus(w, r, jobID, params)
	})
}

func (siw *ServerInterfaceWrapper) ListEvents(w http.ResponseWriter, r *http.Request) {
	var params ListEventsParams
	if !siw.query(w, r, "session_id", &params.SessionId) ||
		!siw.query(w, r, "event_type", &params.EventType) ||
		!siw.query(w, r, "limit", &params.Limit) ||
		!siw.query(w, r, "offset", &params.Offset) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListEvents(w, r, params)
	})
}

func (siw *ServerInterfaceWrapper) ReceiveEvent(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.ReceiveEvent)
}

func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, siw.Handler.HealthCheck)
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler creates http.Handler with routing matching the gateway's routes.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerFromMux creates http.Handler with routing on top of an existing router.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{BaseRouter: r})
}

// HandlerWithOptions creates http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			WriteError(w, r, http.StatusBadRequest, CodeInvalidParameter, err.Error())
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}
	base := options.BaseURL

	r.Group(func(r chi.Router) {
		r.Post(base+"/api/auth/register", wrapper.Register)
		r.Post(base+"/api/auth/login", wrapper.Login)
		r.Post(base+"/api/auth/logout", wrapper.Logout)
		r.Get(base+"/api/auth/me", wrapper.GetMe)
		r.Post(base+"/api/auth/refresh", wrapper.RefreshToken)

		r.Get(base+"/api/sessions", wrapper.ListSessions)
		r.Post(base+"/api/sessions", wrapper.CreateSession)
		r.Get(base+"/api/sessions/{id}", wrapper.withID(si.GetSession))
		r.Delete(base+"/api/sessions/{id}", wrapper.withID(si.DeleteSession))
		r.Post(base+"/api/sessions/{id}/verify", wrapper.withID(si.VerifySessionCode))
		r.Get(base+"/api/sessions/{id}/status", wrapper.withID(si.PollSessionStatus))
		r.Get(base+"/api/sessions/{id}/watch", wrapper.withID(si.GetSessionWatch))
		r.Post(base+"/api/sessions/{id}/watch", wrapper.withID(si.StartSessionWatch))
		r.Delete(base+"/api/sessions/{id}/watch", wrapper.withID(si.CancelSessionWatch))

		r.Get(base+"/api/sessions/{id}/webhook", wrapper.withID(si.GetWebhook))
		r.Post(base+"/api/sessions/{id}/webhook", wrapper.CreateWebhook)
		r.Delete(base+"/api/sessions/{id}/webhook", wrapper.withID(si.DeleteWebhook))
		r.Post(base+"/api/sessions/{id}/webhook/start", wrapper.withID(si.StartWebhook))
		r.Post(base+"/api/sessions/{id}/webhook/stop", wrapper.withID(si.StopWebhook))
		r.Get(base+"/api/pool/status", wrapper.GetPoolStatus)

		r.Get(base+"/api/sessions/{id}/chats", wrapper.ListChats)
		r.Get(base+"/api/sessions/{id}/chats/{chatID}", wrapper.GetChat)
		r.Get(base+"/api/sessions/{id}/chats/{chatID}/history", wrapper.GetChatHistory)
		r.Get(base+"/api/sessions/{id}/chats/{chatID}/history/watch", wrapper.WatchChatHistory)
		r.Get(base+"/api/sessions/{id}/contacts", wrapper.ListContacts)

		r.Post(base+"/api/sessions/{id}/messages/text", wrapper.withID(si.SendText))
		r.Post(base+"/api/sessions/{id}/messages/bulk", wrapper.withID(si.SendBulk))
		r.Post(base+"/api/sessions/{id}/messages/{kind}", wrapper.SendMedia)
		r.Get(base+"/api/messages/{jobID}/status", wrapper.GetJobStatus)

		r.Get(base+"/api/events", wrapper.ListEvents)
		r.Post(base+"/hooks/telegram", wrapper.ReceiveEvent)

		r.Get(base+"/health", wrapper.HealthCheck)
	})

	return r
}
