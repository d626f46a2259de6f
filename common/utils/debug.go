package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type LogContext map[string]interface{}

type logLine struct {
	Time    string     `json:"time"`
	Service string     `json:"service"`
	Message string     `json:"message"`
	Context LogContext `json:"context"`
}

// Debug emits one structured JSON log line on stdout, tagged with the
// emitting service and the host it runs on.
func Debug(service string, message string) {
	context := make(LogContext)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}
	context["pid"] = os.Getpid()

	data, _ := json.Marshal(logLine{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	})

	fmt.Println(string(data))
}
