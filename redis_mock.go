package redisutils

import (
	"fmt"
	"sync"
	"time"
)

// MockCallRecord represents a single Redis command call record for testing verification.
type MockCallRecord struct {
	Timestamp time.Time
	Command   string
	Args      []interface{}
	Response  interface{}
	Error     error
}

// MockResponse contains the response data and optional error for mock operations.
// Data should use the shapes go-redis hands back for RESP2: string, int64,
// []interface{} (with nil holes) or nil for an absent reply.
type MockResponse struct {
	Data  interface{}
	Error error
	Delay time.Duration // Optional: simulate network delay
}

// MockConditionFunc defines a function that determines if a condition matches for conditional responses.
type MockConditionFunc func(cmd string, args []interface{}) bool

// ArgIs matches a call whose i-th argument (after the command name) equals v,
// e.g. ArgIs(2, "NX") for a set-if-absent.
func ArgIs(i int, v interface{}) MockConditionFunc {
	return func(cmd string, args []interface{}) bool {
		return i < len(args) && args[i] == v
	}
}

// MockConditionRule represents a conditional response rule.
type MockConditionRule struct {
	Command   string
	Condition MockConditionFunc
	Response  MockResponse
}

// MockRedisOp implements RedisOperator for tests. It records every command it
// receives and replies from configured responses; anything unconfigured
// replies as absent.
type MockRedisOp struct {
	redisCommands
	mutex           sync.RWMutex
	responses       map[string]MockResponse   // Static responses by command:key pattern
	sequences       map[string][]MockResponse // Sequential responses
	conditions      []MockConditionRule       // Conditional responses
	callHistory     []MockCallRecord          // All call records
	sequenceIndexes map[string]int            // Current index for sequence responses
	defaultError    error                     // Default error for unmatched calls

	// Simulated connection pool info
	activeCount int
	idleCount   int
	profile     RedisProfile
}

// NewMockRedisOp creates a new MockRedisOp instance.
func NewMockRedisOp() *MockRedisOp {
	m := &MockRedisOp{
		responses:       make(map[string]MockResponse),
		sequences:       make(map[string][]MockResponse),
		conditions:      make([]MockConditionRule, 0),
		callHistory:     make([]MockCallRecord, 0),
		sequenceIndexes: make(map[string]int),
		activeCount:     0,
		idleCount:       1,
		profile: RedisProfile{
			Host: "mock",
			Port: 6379,
		},
	}

	m.redisCommands = redisCommands{do: m.mockDo}
	return m
}

// SetResponse sets a static response for a specific command and key pattern.
// Pattern supports "*" as wildcard for any key, "" for commands without a key.
func (m *MockRedisOp) SetResponse(cmd string, keyPattern string, data interface{}, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	key := fmt.Sprintf("%s:%s", cmd, keyPattern)
	m.responses[key] = MockResponse{Data: data, Error: err}
}

// SetSequentialResponses sets a sequence of responses for a command and key pattern.
// Keyed sequences stay on their last response once exhausted; wildcard sequences cycle.
func (m *MockRedisOp) SetSequentialResponses(cmd string, keyPattern string, responses []MockResponse) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	key := fmt.Sprintf("%s:%s", cmd, keyPattern)
	m.sequences[key] = responses
	m.sequenceIndexes[key] = 0
}

// SetConditionalResponse adds a conditional response rule.
func (m *MockRedisOp) SetConditionalResponse(cmd string, condition MockConditionFunc, response MockResponse) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.conditions = append(m.conditions, MockConditionRule{
		Command:   cmd,
		Condition: condition,
		Response:  response,
	})
}

// SetDefaultError sets a default error returned when no specific response is configured.
func (m *MockRedisOp) SetDefaultError(err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.defaultError = err
}

// GetCallHistory returns all recorded call history.
func (m *MockRedisOp) GetCallHistory() []MockCallRecord {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	history := make([]MockCallRecord, len(m.callHistory))
	copy(history, m.callHistory)
	return history
}

// GetCallsByCommand returns all recorded calls for a specific command.
func (m *MockRedisOp) GetCallsByCommand(command string) []MockCallRecord {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var filteredCalls []MockCallRecord
	for _, call := range m.callHistory {
		if call.Command == command {
			filteredCalls = append(filteredCalls, call)
		}
	}
	return filteredCalls
}

// ClearCallHistory clears all recorded call history.
func (m *MockRedisOp) ClearCallHistory() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.callHistory = m.callHistory[:0]
}

// GetCallCount returns the number of times a specific command was called.
func (m *MockRedisOp) GetCallCount(cmd string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	count := 0
	for _, record := range m.callHistory {
		if record.Command == cmd {
			count++
		}
	}
	return count
}

// TotalCallCount returns the number of commands received, whatever they were.
func (m *MockRedisOp) TotalCallCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.callHistory)
}

// GetLastCall returns the most recent call record, or nil if no calls made.
func (m *MockRedisOp) GetLastCall() *MockCallRecord {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if len(m.callHistory) == 0 {
		return nil
	}
	last := m.callHistory[len(m.callHistory)-1]
	return &last
}

// Reset clears all mock data including responses, history, and sequences.
func (m *MockRedisOp) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.responses = make(map[string]MockResponse)
	m.sequences = make(map[string][]MockResponse)
	m.conditions = make([]MockConditionRule, 0)
	m.callHistory = make([]MockCallRecord, 0)
	m.sequenceIndexes = make(map[string]int)
	m.defaultError = nil
}

// SetActiveCount sets the simulated active connection count.
func (m *MockRedisOp) SetActiveCount(count int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.activeCount = count
}

// SetIdleCount sets the simulated idle connection count.
func (m *MockRedisOp) SetIdleCount(count int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.idleCount = count
}

// SetProfile sets the simulated connection profile.
func (m *MockRedisOp) SetProfile(profile RedisProfile) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.profile = profile
}

// mockDo handles the core mock logic for Redis commands.
func (m *MockRedisOp) mockDo(cmd string, args ...interface{}) *RedisResponse {
	timestamp := time.Now()
	response := m.findResponse(cmd, args)

	record := MockCallRecord{
		Timestamp: timestamp,
		Command:   cmd,
		Args:      args,
		Response:  response.Data,
		Error:     response.Error,
	}

	m.mutex.Lock()
	m.callHistory = append(m.callHistory, record)
	m.mutex.Unlock()

	if response.Delay > 0 {
		time.Sleep(response.Delay)
	}

	if response.Error != nil {
		return &RedisResponse{Error: response.Error}
	}

	if response.Data == nil {
		return &RedisResponse{Error: RedisNotFound}
	}

	return &RedisResponse{
		RedisResponseEntity: RedisResponseEntity{data: response.Data},
		Error:               nil,
	}
}

// findResponse finds the appropriate mock response for a command.
func (m *MockRedisOp) findResponse(cmd string, args []interface{}) MockResponse {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	// 1. Try conditional responses first
	for _, rule := range m.conditions {
		if rule.Command == cmd && rule.Condition(cmd, args) {
			return rule.Response
		}
	}

	// 2. Try sequence responses
	if len(args) > 0 {
		key := fmt.Sprintf("%s:%v", cmd, args[0])
		if sequence, exists := m.sequences[key]; exists && len(sequence) > 0 {
			index := m.sequenceIndexes[key]
			response := sequence[index]
			if index < len(sequence)-1 {
				m.sequenceIndexes[key] = index + 1
			}
			return response
		}

		wildcardKey := fmt.Sprintf("%s:*", cmd)
		if sequence, exists := m.sequences[wildcardKey]; exists && len(sequence) > 0 {
			index := m.sequenceIndexes[wildcardKey]
			response := sequence[index]
			m.sequenceIndexes[wildcardKey] = (index + 1) % len(sequence)
			return response
		}
	}

	// 3. Try static responses
	if len(args) > 0 {
		key := fmt.Sprintf("%s:%v", cmd, args[0])
		if response, exists := m.responses[key]; exists {
			return response
		}

		wildcardKey := fmt.Sprintf("%s:*", cmd)
		if response, exists := m.responses[wildcardKey]; exists {
			return response
		}
	}

	// 4. Command without key (like PING)
	noKeyResponse := fmt.Sprintf("%s:", cmd)
	if response, exists := m.responses[noKeyResponse]; exists {
		return response
	}

	// 5. Return default error or absent
	if m.defaultError != nil {
		return MockResponse{Error: m.defaultError}
	}

	return MockResponse{Data: nil, Error: nil}
}

func (m *MockRedisOp) Profile() RedisProfile {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.profile
}

func (m *MockRedisOp) ActiveCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeCount
}

func (m *MockRedisOp) IdleCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.idleCount
}

func (m *MockRedisOp) Close() error {
	return nil
}
