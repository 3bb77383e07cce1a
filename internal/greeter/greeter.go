package greeter

import "fmt"

// GetGreeting returns the stub menu greeting for a user's short name
func GetGreeting(name string) string {
	return fmt.Sprintf("Hello, %s! What can I help you with today?", name)
}
