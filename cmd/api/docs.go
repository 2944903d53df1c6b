package main

// @title ISS Tracker API
// @version 1.0
// @description Tracks the International Space Station: polls wheretheiss.at for the current position, keeps a bounded ground track and serves it as JSON, GeoJSON and a render payload for the embedded globe page.

// @contact.name API Support

// @license.name MIT

// @BasePath /
