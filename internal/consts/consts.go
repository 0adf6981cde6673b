package consts

type Backend string

const (
	BackendREST Backend = "rest"
	BackendSDK  Backend = "sdk"
)

func (b Backend) String() string {
	return string(b)
}

type Model string

// Gemini25FlashImage is the default generation model.
const Gemini25FlashImage Model = "gemini-2.5-flash-image"

func (m Model) String() string {
	return string(m)
}

const (
	EventGenerateSucceed = "generate_succeed"
	EventGenerateFailed  = "generate_failed"
)

const (
	SessionHeader = "X-Session-Id"
	SessionCookie = "session_id"
)
