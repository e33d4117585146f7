package types

// Response is the envelope every endpoint returns. Code 200 means success;
// anything else carries a human-readable failure in Message and the zero
// value in Data. The HTTP status stays 200 either way, the frontend only
// looks at the envelope.
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func OK[T any](data T) Response[T] {
	return Response[T]{
		Code:    200,
		Message: "success",
		Data:    data,
	}
}

func Fail[T any](msg string) Response[T] {
	return Response[T]{
		Code:    500,
		Message: msg,
	}
}
