// Package imaging implements the core photo preparation pipeline.
//
// The pipeline applies up to three geometric transforms to a single decoded
// raster buffer and writes the result back to storage exactly once:
//
//  1. Border: pad the canvas with a uniform-color frame of fixed thickness.
//  2. Aspect fill: pad the canvas along one axis so the width:height ratio
//     matches a target, without cropping or scaling content.
//  3. Longest side: scale the whole canvas uniformly so the longest dimension
//     equals a target length.
//
// The stages always run in that order, no matter in which order they were
// requested on the Pipeline. Each stage is a pure function from one buffer to
// a new one; buffers are replaced wholesale, never mutated in place.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Buffers
//
// Decoded images are normalized to *image.NRGBA: a row-major grid of 8-bit
// RGBA samples whose Pix slice always holds width*height*4 bytes.
//
// # Error Handling
//
// Only the I/O boundary fails: Decode returns *DecodeError (missing,
// unreadable or unsupported source) and Encode returns *EncodeError
// (unwritable destination or unsupported target format). The transform
// stages are total over valid buffers; invalid stage parameters are rejected
// before any stage runs.
package imaging
