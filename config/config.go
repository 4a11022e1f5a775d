package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"travlist/datastruct/travlist"
	"travlist/pkg/util"
)

const (
	defaultStore    = "stack"
	defaultCapacity = 16
)

var ErrInvalidConfig = errors.New("invalid config")

type AppProperties struct {
	Store      string   `cfg:"store"`
	Capacity   int      `cfg:"capacity"`
	LogLevel   string   `cfg:"loglevel"`
	LogPath    string   `cfg:"logpath"`
	FileLog    bool     `cfg:"filelog"`
	TimeFormat string   `cfg:"timeformat"`
	Strict     bool     `cfg:"strict"`
	Lists      []string `cfg:"lists"`

	// config file path
	CfPath string `cfg:"cf,omitempty"`
}

var Properties = Default()

// Default returns the properties used when no config file is given.
func Default() *AppProperties {
	return &AppProperties{
		Store:    defaultStore,
		Capacity: defaultCapacity,
		LogLevel: logrus.InfoLevel.String(),
		LogPath:  ".",
	}
}

func parse(src io.Reader) (*AppProperties, error) {
	config := Default()

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.TrimSpace(line[pivot+1:])
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	// parse format
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		key, _, _ = strings.Cut(key, ",")
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		// fill config
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, errors.WithMessagef(ErrInvalidConfig, "%s: %q is not a number", key, value)
			}
			fieldVal.SetInt(intValue)
		case reflect.Bool:
			boolValue := "yes" == value
			fieldVal.SetBool(boolValue)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				slice := strings.Split(value, ",")
				for j := range slice {
					slice[j] = strings.TrimSpace(slice[j])
				}
				fieldVal.Set(reflect.ValueOf(slice))
			}
		}
	}
	return config, nil
}

// Validate checks the values the application cannot run with.
func (p *AppProperties) Validate() error {
	if _, err := travlist.ParseKind(p.Store); err != nil {
		return errors.WithMessagef(ErrInvalidConfig, "store: %v", err)
	}
	if p.Capacity <= 0 {
		return errors.WithMessagef(ErrInvalidConfig, "capacity %d is not positive", p.Capacity)
	}
	if _, err := p.Level(); err != nil {
		return err
	}
	return nil
}

// Kind returns the configured store.
func (p *AppProperties) Kind() travlist.Kind {
	kind, _ := travlist.ParseKind(p.Store)
	return kind
}

// Level returns the configured log level.
func (p *AppProperties) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(p.LogLevel)
	if err != nil {
		return level, errors.WithMessagef(ErrInvalidConfig, "loglevel: %v", err)
	}
	return level, nil
}

// SetUpConfig loads and validates filename into Properties.
func SetUpConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer util.Close(file)
	props, err := parse(file)
	if err != nil {
		return err
	}
	if err := props.Validate(); err != nil {
		return err
	}
	configFilePath, err := filepath.Abs(filename)
	if err == nil {
		props.CfPath = configFilePath
	}
	if props.LogPath == "" {
		props.LogPath = "."
	}
	Properties = props
	return nil
}
