package domain

// Camera is one device known to the upstream VMS.
type Camera struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Model           string `json:"model"`
	ConnectionState string `json:"connectionState"`
	IPAddress       string `json:"ipAddress"`
	Connected       bool   `json:"connected"`
	RecordedData    bool   `json:"recordedData"`
	PTZ             bool   `json:"ptz"`
}
