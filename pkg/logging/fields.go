package logging

import "time"

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Latency(d time.Duration) Field {
	return Field{Key: "latency_ms", Value: float64(d.Microseconds()) / 1000.0}
}

// Ride-log domain fields

func RunID(id string) Field {
	return Field{Key: "run_id", Value: id}
}

func Stage(name string) Field {
	return Field{Key: "stage", Value: name}
}

func Rides(n int) Field {
	return Field{Key: "rides", Value: n}
}

func Nodes(n int) Field {
	return Field{Key: "nodes", Value: n}
}

func Edges(n int) Field {
	return Field{Key: "edges", Value: n}
}

func Location(key, name string) Field {
	return Field{Key: key, Value: name}
}
