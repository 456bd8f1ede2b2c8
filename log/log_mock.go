package log

import "fmt"

// MockLogger mock logger, prints everything to stdout
type MockLogger struct{}

func (l MockLogger) Debug(v ...interface{}) {
	fmt.Println(v...)
}
func (l MockLogger) Debugf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
}

func (l MockLogger) Info(v ...interface{}) {
	fmt.Println(v...)
}
func (l MockLogger) Infof(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
}

func (l MockLogger) Warn(v ...interface{}) {
	fmt.Println(v...)
}
func (l MockLogger) Warnf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
}

func (l MockLogger) Error(v ...interface{}) {
	fmt.Println(v...)
}
func (l MockLogger) Errorf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
}
