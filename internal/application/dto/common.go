package dto

// Response es el sobre JSON uniforme de toda la API:
// { "success": bool, "message"?: string, "data"?: payload, "error"?: detalle }.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMsg construye una respuesta exitosa con mensaje y datos.
func OKMsg(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error con mensaje.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailErr construye una respuesta de error con mensaje y detalle.
func FailErr(message string, err error) Response {
	r := Response{Success: false, Message: message}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
