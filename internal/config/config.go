// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Controls ControlsConfig `yaml:"controls"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
	Backend    string `yaml:"backend"` // "sdl" or "glfw"

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// ControlsConfig holds input rates. Angles are in degrees, speeds are per second.
type ControlsConfig struct {
	RotateStep       float32 `yaml:"rotate_step"`
	ScaleStep        float32 `yaml:"scale_step"`
	RotateSpeed      float32 `yaml:"rotate_speed"`
	MoveSpeed        float32 `yaml:"move_speed"`
	CameraSpeed      float32 `yaml:"camera_speed"`
	CameraFastSpeed  float32 `yaml:"camera_fast_speed"`
	OrbitSensitivity float32 `yaml:"orbit_sensitivity"` // cursor pixels per radian of orbit
	ZoomSensitivity  float32 `yaml:"zoom_sensitivity"`  // cursor pixels per unit of FOV
}

// CameraConfig holds projection settings.
type CameraConfig struct {
	FOV    float32 `yaml:"fov"`
	FOVMin float32 `yaml:"fov_min"`
	FOVMax float32 `yaml:"fov_max"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's stock values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			Samples:    4,
			Backend:    BackendSDL,

			ScreenshotDir: "screenshots",
		},
		Controls: ControlsConfig{
			RotateStep:       5,
			ScaleStep:        0.05,
			RotateSpeed:      180,
			MoveSpeed:        10,
			CameraSpeed:      20,
			CameraFastSpeed:  40,
			OrbitSensitivity: 500,
			ZoomSensitivity:  100,
		},
		Camera: CameraConfig{
			FOV:    70,
			FOVMin: 69.2,
			FOVMax: 70,
			Near:   0.01,
			Far:    100,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
