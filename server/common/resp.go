package common

type Resp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	CodeSuccess      = 0
	CodeUnknownError = -1
)

func MakeSuccessResp(data interface{}) *Resp {
	return &Resp{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	}
}

func MakeUnknownErrorResp() *Resp {
	return &Resp{
		Code:    CodeUnknownError,
		Message: "unknown error",
	}
}
