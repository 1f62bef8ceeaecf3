// Package config loads the mazewalk binary's settings from the environment,
// reading a .env file first when one exists.
//
// Keys:
//
//   - MAZE_FILE: maze text file; empty uses the embedded maze.
//   - MAZE_START: "x,y", default "1,1".
//   - MAZE_GOAL: "x,y"; empty uses the bottom-right-most open cell.
//   - MAZE_CELL_SIZE: pixels per cell, default 15.
//   - MAZE_FRAMES_DIR: directory for PNG frames; empty disables them.
//   - MAZE_OUTPUT_PNG: final image, default "maze.png".
//   - MAZE_CEILING: frontier size limit, default 10000.
//   - MAZE_TEXT_FRAMES: print ASCII frames, default false.
//   - LOG_LEVEL: logrus level, default "info".
package config
