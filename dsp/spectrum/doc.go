// Package spectrum computes power spectra of rendered buffers and summary
// features used to inspect drum timbres: spectral centroid and band energy.
//
// Transforms run on algo-fft plans; windowing and bin power use algo-vecmath
// block kernels.
package spectrum
