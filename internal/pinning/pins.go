package pinning

// defaultPins are the base64 SHA-256 SPKI digests accepted for
// lastpass.com and lastpass.eu: the roots currently serving both domains
// plus the ones they are expected to migrate to. Fixed for the process
// lifetime; there is no runtime override.
var defaultPins = []string{
	"K87oWBWM9UZfyddvDfoxL+8lpNyoUB2ptGtn0fv6G2Q=", // GlobalSign Root CA
	"cGuxAXyFXFkWm61cF4HPWX8S0srS9j0aSqN0k4AP+4A=", // GlobalSign Root CA - R3
	"r/mIkG3eEpVdm+u/ko/cwxzOMo1bk4TyHIlByibiA5E=", // DigiCert Global Root CA
	"i7WTqTvh0OioIruIfFR4kMPnBqrS2rdiVPl/s2uC/CY=", // DigiCert Global Root G2
	"C5+lpZ7tcVwmwQIMcRtPbsQtWLABXhQzejna0wHFr8M=", // ISRG Root X1
	"++MBgDH5WGvL9Bcn5Be30cRcL0f5O+NyoXuWtQdX1aI=", // Amazon Root CA 1
	"du6FkDdMcVQ3u8prumAo6t3i3G27uMP2EOhR8R0at/U=", // Entrust Root CA - G2
}
