package gotime

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Configuration holds the settings read from settings.conf and
// settings_local.conf. Environment variables win over both.
type Configuration struct {
	confs      map[string]string
	context    string
	app        string
	requests   map[string]string
	rmu        sync.RWMutex
	mu         sync.RWMutex
	listeners  []SettingsListener
	listenerMu sync.RWMutex
}

var (
	c                  *Configuration // This is the default config
	once               sync.Once
	alternativeConfigs = make(map[string]*Configuration)
	configsMu          sync.RWMutex

	substitutionRegex = regexp.MustCompile(`(\$\{.*?\})`)
)

// SettingsListener is notified whenever a setting is set or unset.
type SettingsListener interface {
	UpdateSetting(key string, value string)
}

// findFile looks for filename next to the binary and in each parent, then
// does the same from the working directory.
func findFile(filename string) (string, []byte, error) {
	var starts []string

	if exePath, err := os.Executable(); err == nil {
		starts = append(starts, filepath.Dir(exePath))
	}

	if wd, err := os.Getwd(); err == nil {
		starts = append(starts, wd)
	}

	for _, dir := range starts {
		for {
			f := filepath.Join(dir, filename)

			b, err := os.ReadFile(f)
			if err == nil {
				return f, b, nil
			}

			if !os.IsNotExist(err) {
				return f, nil, err
			}

			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return filename, nil, os.ErrNotExist
}

// parseSettings adds each key=value line of b to m. Anything after # is a
// comment and a value wrapped in double quotes loses them.
func parseSettings(m map[string]string, f string, b []byte) {
	for lineNum, line := range strings.Split(string(b), "\n") {
		line = strings.Split(line, "#")[0]

		pos := strings.Index(line, "=")
		if pos == -1 {
			continue
		}

		key := strings.TrimSpace(line[:pos])
		value := strings.TrimSpace(line[pos+1:])

		if len(value) > 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}

		if oldVal, found := m[key]; found {
			log.Printf("INFO: %s:%d is replacing %q: %q -> %q", f, lineNum+1, key, oldVal, value)
		}

		m[key] = value
	}
}

func processFile(m map[string]string, filename string) (string, error) {
	f, b, err := findFile(filename)
	if err != nil {
		return f, err
	}

	parseSettings(m, f, b)

	return f, nil
}

// Config returns the default Configuration, or a copy of it bound to
// alternativeContext.
func Config(alternativeContext ...string) *Configuration {
	once.Do(func() {
		// SETTINGS_ENV_FILE overrides the default .env file name.
		envFile := os.Getenv("SETTINGS_ENV_FILE")
		if envFile == "" {
			envFile = ".env"
		}

		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				log.Printf("WARN: failed to load %s: %v", envFile, err)
			}
		}

		c = NewConfiguration(os.Getenv("SETTINGS_CONTEXT"), os.Getenv("SETTINGS_APPLICATION"))

		for _, filename := range []string{"settings.conf", "settings_local.conf"} {
			f, err := processFile(c.confs, filename)
			if err != nil {
				if os.IsNotExist(err) {
					log.Printf("WARN: No config file '%s'", filename)
					continue
				}

				log.Printf("FATAL: Failed to read config file '%s' - [%v]", f, err)
				os.Exit(1)
			}
		}

		c.substitute()
	})

	if len(alternativeContext) == 0 || alternativeContext[0] == "" || alternativeContext[0] == c.context {
		return c
	}

	context := alternativeContext[0]

	configsMu.RLock()
	ac, found := alternativeConfigs[context]
	configsMu.RUnlock()

	if found {
		return ac
	}

	configsMu.Lock()
	defer configsMu.Unlock()

	// Double check the config isn't already in the map
	if ac, found := alternativeConfigs[context]; found {
		return ac
	}

	ac = NewConfiguration(context, c.app)

	c.mu.RLock()
	for k, v := range c.confs {
		ac.confs[k] = v
	}
	c.mu.RUnlock()

	alternativeConfigs[context] = ac

	return ac
}

// NewConfiguration returns an empty Configuration. Hosts that do not want
// the process-wide Config() can build and fill their own.
func NewConfiguration(context string, app string) *Configuration {
	if context == "" {
		context = "dev"
	}

	return &Configuration{
		confs:    make(map[string]string),
		requests: make(map[string]string),
		context:  context,
		app:      app,
	}
}

// substitute replaces each ${key} in a value with the value of key, or
// {UNKNOWN} if there is none.
func (c *Configuration) substitute() {
	for k, v := range c.confs {
		for {
			matches := substitutionRegex.FindAllString(v, -1)
			if len(matches) == 0 {
				break
			}

			for _, match := range matches {
				val, ok := c.Get(match[2 : len(match)-1])
				if !ok {
					val = "{UNKNOWN}"
				}
				v = strings.Replace(v, match, val, 1)
			}
		}

		c.confs[k] = v
	}
}

// Set an item in the config
func (c *Configuration) Set(key string, value string) string {
	c.mu.Lock()
	oldValue := c.confs[key]
	c.confs[key] = value
	c.mu.Unlock()

	c.notify(key, value)

	return oldValue
}

// Unset removes an item from the config
func (c *Configuration) Unset(key string) string {
	c.mu.Lock()
	oldValue := c.confs[key]
	delete(c.confs, key)
	c.mu.Unlock()

	c.notify(key, "")

	return oldValue
}

func (c *Configuration) notify(key string, value string) {
	c.listenerMu.RLock()
	defer c.listenerMu.RUnlock()

	for _, listener := range c.listeners {
		listener.UpdateSetting(key, value)
	}
}

func (c *Configuration) Get(key string, defaultValue ...string) (string, bool) {
	val, ok, _ := c.getInternal(key, defaultValue...)

	c.rmu.Lock()
	c.requests[key] = val
	c.rmu.Unlock()

	return val, ok
}

func (c *Configuration) getInternal(key string, defaultValue ...string) (string, bool, string) {
	if env, ok := os.LookupEnv(key); ok {
		return env, true, "ENV"
	}

	if ret, ok, keyUsed := c.findValue(key); ok {
		return ret, true, keyUsed
	}

	if len(defaultValue) > 0 {
		return defaultValue[0], false, "DEFAULT"
	}

	return "", false, "DEFAULT"
}

// findValue tries key.context.app, key.context, then key, dropping one
// suffix at a time.
func (c *Configuration) findValue(key string) (ret string, ok bool, k string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	k = key
	if c.context != "" {
		k += "." + c.context
	}

	for {
		if c.app != "" {
			if ret, ok = c.confs[k+"."+c.app]; ok {
				return ret, ok, k + "." + c.app
			}
		}

		if ret, ok = c.confs[k]; ok {
			return ret, ok, k
		}

		pos := strings.LastIndex(k, ".")
		if pos == -1 || k[:pos] == "" {
			return "", false, k
		}
		k = k[:pos]
	}
}

func (c *Configuration) GetMulti(key string, sep string, defaultValue ...[]string) ([]string, bool) {
	str, ok := c.Get(key)
	if str == "" || !ok {
		if len(defaultValue) > 0 {
			return defaultValue[0], false
		}
		return []string{}, false
	}

	items := strings.Split(str, sep)
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items, ok
}

// number is used internally as a type constraint for numeric types
type number interface {
	~int | ~int64 | ~uint64
}

func getNumber[T number](c *Configuration, key string, defaultValue ...T) (T, bool, error) {
	str, ok := c.Get(key)
	if str == "" || !ok {
		if len(defaultValue) > 0 {
			return defaultValue[0], false, nil
		}
		var zero T
		return zero, false, nil
	}

	var result T
	var err error

	switch any(result).(type) {
	case int, int64:
		val, e := strconv.ParseInt(str, 10, 64)
		err = e
		result = T(val)
	case uint64:
		val, e := strconv.ParseUint(str, 10, 64)
		err = e
		result = T(val)
	}

	if err != nil {
		var zero T
		return zero, true, errors.Wrapf(err, "failed to parse %q as %T", str, zero)
	}

	return result, true, nil
}

func (c *Configuration) TryGetInt(key string, defaultValue ...int) (int, bool, error) {
	return getNumber(c, key, defaultValue...)
}

func (c *Configuration) GetInt(key string, defaultValue ...int) (int, bool) {
	n, found, err := getNumber(c, key, defaultValue...)
	if err != nil {
		return n, false
	}

	return n, found
}

func (c *Configuration) TryGetUint64(key string, defaultValue ...uint64) (uint64, bool, error) {
	return getNumber(c, key, defaultValue...)
}

func (c *Configuration) GetUint64(key string, defaultValue ...uint64) (uint64, bool) {
	n, found, err := getNumber(c, key, defaultValue...)
	if err != nil {
		return n, false
	}

	return n, found
}

func (c *Configuration) GetBool(key string, defaultValue ...bool) bool {
	str, ok := c.Get(key)
	if str == "" || !ok {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return false
	}

	b, err := strconv.ParseBool(str)
	if err != nil {
		return false
	}

	return b
}

func (c *Configuration) GetDuration(key string, defaultValue ...time.Duration) (time.Duration, error, bool) {
	str, ok := c.Get(key)
	if str == "" || !ok {
		if len(defaultValue) > 0 {
			return defaultValue[0], nil, false
		}
		return 0, nil, false
	}

	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, err, false
	}
	return d, nil, ok
}

func (c *Configuration) GetAll() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m := make(map[string]string, len(c.confs)+1)

	m["_SETTINGS_CONTEXT"] = c.context

	for k, v := range c.confs {
		if envVal, ok := os.LookupEnv(k); ok {
			m[k] = envVal
		} else {
			m[k] = v
		}
	}

	return m
}

// Requested lists every key that was looked up, with the value returned.
func (c *Configuration) Requested() string {
	c.rmu.RLock()
	defer c.rmu.RUnlock()

	keys := make([]string, 0, len(c.requests))
	for k := range c.requests {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, k := range keys {
		builder.WriteString(fmt.Sprintf("%s=%s\n", k, c.requests[k]))
	}

	return builder.String()
}

// Stats comment
func (c *Configuration) Stats() string {
	var builder strings.Builder

	builder.WriteString("\nSETTINGS_ENV\n")
	builder.WriteString("------------\n")
	builder.WriteString("Context:     ")

	if c.context != "dev" {
		builder.WriteString(c.context)
	} else {
		builder.WriteString("Not set (dev)")
	}

	builder.WriteString("\nApplication: ")
	if c.app != "" {
		builder.WriteString(c.app)
	} else {
		builder.WriteString("Not set")
	}

	builder.WriteString("\n\nSETTINGS\n--------\n")

	// Keys without their context suffixes
	keysMap := make(map[string]struct{})
	c.mu.RLock()
	for item := range c.confs {
		keysMap[strings.Split(item, ".")[0]] = struct{}{}
	}
	c.mu.RUnlock()

	keys := make([]string, 0, len(keysMap))
	for k := range keysMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, _, keyUsed := c.getInternal(k)

		context := strings.Replace(keyUsed, k, "", 1)
		if context != "" {
			builder.WriteString(fmt.Sprintf("%s[%s]=%s\n", k, context, v))
		} else {
			builder.WriteString(fmt.Sprintf("%s=%s\n", k, v))
		}
	}

	return builder.String()
}

func (c *Configuration) GetContext() string {
	return c.context
}

func (c *Configuration) AddListener(listener SettingsListener) {
	c.listenerMu.Lock()
	defer c.listenerMu.Unlock()

	c.listeners = append(c.listeners, listener)
}

func (c *Configuration) RemoveListener(listener SettingsListener) {
	c.listenerMu.Lock()
	defer c.listenerMu.Unlock()

	for i, l := range c.listeners {
		if l == listener {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}
